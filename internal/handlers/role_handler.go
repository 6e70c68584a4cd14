package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

// ListRolesHandler fetches all roles with their associated permissions.
func ListRolesHandler(c *gin.Context) {
	var roles []models.Role
	query := config.DB.Preload("Permissions").Order("name")

	if c.Query("all") == "true" {
		if err := query.Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os perfis"})
			return
		}
		if roles == nil {
			roles = make([]models.Role, 0)
		}
		c.JSON(http.StatusOK, roles)
		return
	}

	var totalRows int64
	config.DB.Model(&models.Role{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os perfis"})
		return
	}
	if roles == nil {
		roles = make([]models.Role, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, roles, totalRows))
}

type roleInput struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	PermissionIDs []uint `json:"permissionIds"`
}

func CreateRoleHandler(c *gin.Context) {
	var input roleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.Role{Name: input.Name, Description: input.Description}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		if len(input.PermissionIDs) > 0 {
			var permissions []models.Permission
			if err := tx.Where("id IN ?", input.PermissionIDs).Find(&permissions).Error; err != nil {
				return err
			}
			if err := tx.Model(&role).Association("Permissions").Replace(permissions); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar o perfil: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, role)
}

func GetRoleHandler(c *gin.Context) {
	var role models.Role
	if err := config.DB.Preload("Permissions").First(&role, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil não encontrado"})
		return
	}
	c.JSON(http.StatusOK, role)
}

func UpdateRoleHandler(c *gin.Context) {
	var role models.Role
	if err := config.DB.First(&role, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil não encontrado"})
		return
	}

	var input roleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role.Name = input.Name
	role.Description = input.Description

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&role).Error; err != nil {
			return err
		}
		var permissions []models.Permission
		if len(input.PermissionIDs) > 0 {
			if err := tx.Where("id IN ?", input.PermissionIDs).Find(&permissions).Error; err != nil {
				return err
			}
		}
		return tx.Model(&role).Association("Permissions").Replace(permissions)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o perfil"})
		return
	}
	c.JSON(http.StatusOK, role)
}

func DeleteRoleHandler(c *gin.Context) {
	var role models.Role
	if err := config.DB.First(&role, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil não encontrado"})
		return
	}
	if role.Name == "admin" {
		c.JSON(http.StatusConflict, gin.H{"error": "O perfil admin não pode ser excluído"})
		return
	}

	if err := config.DB.Select("Permissions").Delete(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o perfil"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Perfil excluído"})
}
