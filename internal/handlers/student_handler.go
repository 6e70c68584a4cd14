package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

// StudentResponse is a student row plus the age derived from the birth date.
type StudentResponse struct {
	models.Student
	Age int `json:"age"`
}

func toStudentResponse(s models.Student) StudentResponse {
	return StudentResponse{Student: s, Age: s.Age(time.Now())}
}

// ListStudentsHandler returns the student roster, optionally filtered by a
// name search and by category, paginated.
func ListStudentsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Student{}).Order("name")

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if c.Query("all") == "true" {
		var students []models.Student
		if err := query.Find(&students).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos"})
			return
		}
		data := make([]StudentResponse, 0, len(students))
		for _, s := range students {
			data = append(data, toStudentResponse(s))
		}
		c.JSON(http.StatusOK, gin.H{"data": data})
		return
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível contar os alunos"})
		return
	}

	var students []models.Student
	if err := query.Scopes(Paginate(c)).Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos"})
		return
	}

	data := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		data = append(data, toStudentResponse(s))
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, data, totalRows))
}

// StudentInput is the create/update form payload.
type StudentInput struct {
	Name                string  `json:"name" binding:"required"`
	BirthDate           string  `json:"birthDate"`
	RG                  string  `json:"rg"`
	CPF                 string  `json:"cpf"`
	Category            string  `json:"category" binding:"required"`
	JoinDate            string  `json:"joinDate" binding:"required"`
	Polo                string  `json:"polo"`
	Status              string  `json:"status"`
	ResponsibleName     string  `json:"responsibleName"`
	ResponsibleCPF      string  `json:"responsibleCpf"`
	Whatsapp            string  `json:"whatsapp"`
	Address             string  `json:"address"`
	Position            string  `json:"position"`
	Phone               string  `json:"phone"`
	HasScholarship      bool    `json:"hasScholarship"`
	ScholarshipDiscount float64 `json:"scholarshipDiscount"`
}

// apply validates the form payload and copies it onto the model. The
// scholarship discount is clamped here, at the form boundary: the fee
// resolver trusts it.
func (input StudentInput) apply(student *models.Student) (string, bool) {
	if !models.IsValidCategory(input.Category) {
		return "Categoria inválida", false
	}
	if input.Status != "" && input.Status != models.StudentActive && input.Status != models.StudentInactive {
		return "Status inválido", false
	}

	discount := input.ScholarshipDiscount
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}

	student.Name = input.Name
	student.BirthDate = input.BirthDate
	student.RG = input.RG
	student.CPF = input.CPF
	student.Category = input.Category
	student.JoinDate = input.JoinDate
	student.Polo = input.Polo
	if input.Status != "" {
		student.Status = input.Status
	}
	student.ResponsibleName = input.ResponsibleName
	student.ResponsibleCPF = input.ResponsibleCPF
	student.Whatsapp = input.Whatsapp
	student.Address = input.Address
	student.Position = input.Position
	student.Phone = input.Phone
	student.HasScholarship = input.HasScholarship
	student.ScholarshipDiscount = discount
	return "", true
}

func CreateStudentHandler(c *gin.Context) {
	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.Student
	student.Status = models.StudentActive
	if msg, ok := input.apply(&student); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := config.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível salvar o aluno"})
		return
	}
	c.JSON(http.StatusCreated, toStudentResponse(student))
}

func GetStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.First(&student, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado"})
		return
	}
	c.JSON(http.StatusOK, toStudentResponse(student))
}

func UpdateStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.First(&student, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado"})
		return
	}

	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := input.apply(&student); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := config.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o aluno"})
		return
	}
	c.JSON(http.StatusOK, toStudentResponse(student))
}

func DeleteStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.First(&student, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado"})
		return
	}

	if err := config.DB.Delete(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o aluno"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aluno excluído"})
}
