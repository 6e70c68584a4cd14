package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

// ListPermissionsHandler returns the permission catalog grouped by category,
// the shape the settings screen renders.
func ListPermissionsHandler(c *gin.Context) {
	var permissions []models.Permission
	if err := config.DB.Order("category, name").Find(&permissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as permissões"})
		return
	}

	grouped := make(map[string][]models.Permission)
	for _, p := range permissions {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	c.JSON(http.StatusOK, grouped)
}
