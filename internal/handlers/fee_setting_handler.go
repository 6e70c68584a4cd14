package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

// ListFeeSettingsHandler returns the per-category monthly fee table.
func ListFeeSettingsHandler(c *gin.Context) {
	var fees []models.FeeSetting
	if err := config.DB.Order("category").Find(&fees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as mensalidades por categoria"})
		return
	}
	if fees == nil {
		fees = make([]models.FeeSetting, 0)
	}
	c.JSON(http.StatusOK, fees)
}

type feeSettingInput struct {
	Category string   `json:"category" binding:"required"`
	Value    *float64 `json:"value" binding:"required"`
}

func CreateFeeSettingHandler(c *gin.Context) {
	var input feeSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria inválida"})
		return
	}
	if *input.Value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O valor não pode ser negativo"})
		return
	}

	fee := models.FeeSetting{Category: input.Category, Value: *input.Value}
	if err := config.DB.Create(&fee).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Já existe um valor para essa categoria"})
		return
	}
	c.JSON(http.StatusCreated, fee)
}

func UpdateFeeSettingHandler(c *gin.Context) {
	var fee models.FeeSetting
	if err := config.DB.First(&fee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Valor não encontrado"})
		return
	}

	var input struct {
		Value *float64 `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.Value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O valor não pode ser negativo"})
		return
	}

	fee.Value = *input.Value
	if err := config.DB.Save(&fee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o valor"})
		return
	}
	c.JSON(http.StatusOK, fee)
}

func DeleteFeeSettingHandler(c *gin.Context) {
	var fee models.FeeSetting
	if err := config.DB.First(&fee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Valor não encontrado"})
		return
	}

	if err := config.DB.Delete(&fee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o valor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Valor excluído"})
}
