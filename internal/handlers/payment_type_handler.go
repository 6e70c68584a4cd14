package handlers

import (
	"net/http"

	"github.com/Knetic/govaluate"
	"github.com/gin-gonic/gin"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

func ListPaymentTypesHandler(c *gin.Context) {
	var types []models.PaymentType
	if err := config.DB.Order("name").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os tipos de pagamento"})
		return
	}
	if types == nil {
		types = make([]models.PaymentType, 0)
	}
	c.JSON(http.StatusOK, types)
}

type paymentTypeInput struct {
	Name    string `json:"name" binding:"required"`
	Formula string `json:"formula"`
}

// validateFormula rejects formulas govaluate cannot parse, so a broken
// formula never reaches charge creation.
func validateFormula(formula string) bool {
	if formula == "" {
		return true
	}
	_, err := govaluate.NewEvaluableExpression(formula)
	return err == nil
}

func CreatePaymentTypeHandler(c *gin.Context) {
	var input paymentTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validateFormula(input.Formula) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fórmula inválida"})
		return
	}

	paymentType := models.PaymentType{Name: input.Name, Formula: input.Formula}
	if err := config.DB.Create(&paymentType).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Já existe um tipo de pagamento com esse nome"})
		return
	}
	c.JSON(http.StatusCreated, paymentType)
}

func UpdatePaymentTypeHandler(c *gin.Context) {
	var paymentType models.PaymentType
	if err := config.DB.First(&paymentType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de pagamento não encontrado"})
		return
	}

	var input paymentTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validateFormula(input.Formula) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fórmula inválida"})
		return
	}
	// The generator depends on the monthly-fee type by name.
	if paymentType.Name == models.MonthlyFeeType && input.Name != models.MonthlyFeeType {
		c.JSON(http.StatusConflict, gin.H{"error": "O tipo Mensalidade não pode ser renomeado"})
		return
	}

	paymentType.Name = input.Name
	paymentType.Formula = input.Formula
	if err := config.DB.Save(&paymentType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o tipo de pagamento"})
		return
	}
	c.JSON(http.StatusOK, paymentType)
}

func DeletePaymentTypeHandler(c *gin.Context) {
	var paymentType models.PaymentType
	if err := config.DB.First(&paymentType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de pagamento não encontrado"})
		return
	}
	if paymentType.Name == models.MonthlyFeeType {
		c.JSON(http.StatusConflict, gin.H{"error": "O tipo Mensalidade não pode ser excluído"})
		return
	}

	if err := config.DB.Delete(&paymentType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o tipo de pagamento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tipo de pagamento excluído"})
}
