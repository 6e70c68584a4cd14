package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/internal/billing"
	"github.com/pedroloango/futboss/models"
)

// RevenueResponse renders the value and date as display strings.
type RevenueResponse struct {
	ID            uint   `json:"id"`
	Description   string `json:"description"`
	PaymentTypeID uint   `json:"paymentTypeId"`
	PaymentType   string `json:"paymentType"`
	Value         string `json:"value"`
	RevenueDate   string `json:"revenueDate"`
}

func toRevenueResponse(r models.Revenue) RevenueResponse {
	return RevenueResponse{
		ID:            r.ID,
		Description:   r.Description,
		PaymentTypeID: r.PaymentTypeID,
		PaymentType:   r.PaymentType,
		Value:         billing.FormatBRL(r.Value),
		RevenueDate:   formatDisplayDate(r.RevenueDate),
	}
}

func ListRevenuesHandler(c *gin.Context) {
	var revenues []models.Revenue
	if err := config.DB.Order("revenue_date DESC").Find(&revenues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as receitas"})
		return
	}

	data := make([]RevenueResponse, 0, len(revenues))
	for _, r := range revenues {
		data = append(data, toRevenueResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

type revenueInput struct {
	Description   string `json:"description" binding:"required"`
	PaymentTypeID uint   `json:"paymentTypeId" binding:"required"`
	Value         string `json:"value" binding:"required"`
	RevenueDate   string `json:"revenueDate" binding:"required"`
}

func CreateRevenueHandler(c *gin.Context) {
	var input revenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paymentType models.PaymentType
	if err := config.DB.First(&paymentType, input.PaymentTypeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de pagamento não encontrado"})
		return
	}

	value, err := billing.ParseBRL(input.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valor inválido"})
		return
	}

	revenueDate, err := parseDisplayDate(input.RevenueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
		return
	}

	revenue := models.Revenue{
		Description:   input.Description,
		PaymentTypeID: paymentType.ID,
		PaymentType:   paymentType.Name,
		Value:         value,
		RevenueDate:   revenueDate,
	}
	if err := config.DB.Create(&revenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível salvar a receita"})
		return
	}
	c.JSON(http.StatusCreated, toRevenueResponse(revenue))
}

func UpdateRevenueHandler(c *gin.Context) {
	var revenue models.Revenue
	if err := config.DB.First(&revenue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receita não encontrada"})
		return
	}

	var input revenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paymentType models.PaymentType
	if err := config.DB.First(&paymentType, input.PaymentTypeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de pagamento não encontrado"})
		return
	}

	value, err := billing.ParseBRL(input.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valor inválido"})
		return
	}

	revenueDate, err := parseDisplayDate(input.RevenueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
		return
	}

	revenue.Description = input.Description
	revenue.PaymentTypeID = paymentType.ID
	revenue.PaymentType = paymentType.Name
	revenue.Value = value
	revenue.RevenueDate = revenueDate

	if err := config.DB.Save(&revenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar a receita"})
		return
	}
	c.JSON(http.StatusOK, toRevenueResponse(revenue))
}

func DeleteRevenueHandler(c *gin.Context) {
	var revenue models.Revenue
	if err := config.DB.First(&revenue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receita não encontrada"})
		return
	}

	if err := config.DB.Delete(&revenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir a receita"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Receita excluída"})
}
