package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

// ListEvaluationsHandler returns skill evaluations, optionally scoped to one
// student or one category.
func ListEvaluationsHandler(c *gin.Context) {
	query := config.DB.Preload("Student").Order("date DESC")

	if studentID := c.Query("studentId"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if category := c.Query("category"); category != "" {
		query = query.Joins("JOIN students ON students.id = evaluations.student_id").
			Where("students.category = ?", category)
	}

	var evaluations []models.Evaluation
	if err := query.Find(&evaluations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as avaliações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": evaluations})
}

type evaluationInput struct {
	StudentID uint   `json:"studentId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Technical int    `json:"technical" binding:"min=0,max=10"`
	Tactical  int    `json:"tactical" binding:"min=0,max=10"`
	Physical  int    `json:"physical" binding:"min=0,max=10"`
	Mental    int    `json:"mental" binding:"min=0,max=10"`
	Notes     string `json:"notes"`
}

func (in evaluationInput) overallScore() int {
	return int(math.Round(float64(in.Technical+in.Tactical+in.Physical+in.Mental) / 4))
}

func CreateEvaluationHandler(c *gin.Context) {
	var input evaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.Student
	if err := config.DB.First(&student, input.StudentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado"})
		return
	}

	date, err := parseDisplayDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
		return
	}

	evaluation := models.Evaluation{
		StudentID: student.ID,
		Date:      date,
		Technical: input.Technical,
		Tactical:  input.Tactical,
		Physical:  input.Physical,
		Mental:    input.Mental,
		Score:     input.overallScore(),
		Notes:     input.Notes,
	}
	if err := config.DB.Create(&evaluation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível salvar a avaliação"})
		return
	}

	evaluation.Student = student
	c.JSON(http.StatusCreated, evaluation)
}

func UpdateEvaluationHandler(c *gin.Context) {
	var evaluation models.Evaluation
	if err := config.DB.First(&evaluation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avaliação não encontrada"})
		return
	}

	var input evaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDisplayDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
		return
	}

	evaluation.Date = date
	evaluation.Technical = input.Technical
	evaluation.Tactical = input.Tactical
	evaluation.Physical = input.Physical
	evaluation.Mental = input.Mental
	evaluation.Score = input.overallScore()
	evaluation.Notes = input.Notes

	if err := config.DB.Save(&evaluation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar a avaliação"})
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

func DeleteEvaluationHandler(c *gin.Context) {
	var evaluation models.Evaluation
	if err := config.DB.First(&evaluation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avaliação não encontrada"})
		return
	}

	if err := config.DB.Delete(&evaluation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir a avaliação"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avaliação excluída"})
}
