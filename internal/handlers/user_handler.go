package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/internal/middleware"
	"github.com/pedroloango/futboss/models"
)

const tokenLifetime = 72 * time.Hour

// LoginHandler authenticates a user and issues a session token. The session
// data (roles, permissions) is cached so subsequent requests skip the role
// join.
func LoginHandler(c *gin.Context) {
	var input struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe login e senha"})
		return
	}

	var user models.User
	if err := config.DB.Preload("Roles").Where("login = ?", input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login ou senha inválidos"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login ou senha inválidos"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	})
	tokenString, err := token.SignedString(config.JwtKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível gerar o token"})
		return
	}

	session, err := middleware.BuildSession(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível montar a sessão"})
		return
	}
	middleware.CacheSession(session)

	c.SetCookie("auth_token", tokenString, int(tokenLifetime.Seconds()), "/", "", false, true)
	slog.Info("User logged in", "user_id", user.ID, "login", user.Login)

	c.JSON(http.StatusOK, gin.H{
		"token":       tokenString,
		"user":        models.UserResponse{ID: user.ID, Login: user.Login, FullName: user.FullName},
		"roles":       session.Roles,
		"permissions": session.Permissions,
	})
}

// LogoutHandler drops the session cache entry and expires the cookie.
func LogoutHandler(c *gin.Context) {
	if session, ok := middleware.CurrentSession(c); ok {
		middleware.DropSession(session.UserID)
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada"})
}

// GetProfileHandler returns the authenticated user's own record.
func GetProfileHandler(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não encontrada"})
		return
	}

	var user models.User
	if err := config.DB.Preload("Roles").First(&user, session.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// --- User management ---

func ListUsersHandler(c *gin.Context) {
	var users []models.User
	query := config.DB.Preload("Roles").Order("login")

	var totalRows int64
	config.DB.Model(&models.User{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os usuários"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, users, totalRows))
}

func GetUserHandler(c *gin.Context) {
	var user models.User
	if err := config.DB.Preload("Roles").First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type userInput struct {
	Login    string `json:"login" binding:"required"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleIDs  []uint `json:"roleIds"`
}

func CreateUserHandler(c *gin.Context) {
	var input userInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe uma senha"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível processar a senha"})
		return
	}

	user := models.User{
		Login:        input.Login,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if len(input.RoleIDs) > 0 {
			var roles []models.Role
			if err := tx.Where("id IN ?", input.RoleIDs).Find(&roles).Error; err != nil {
				return err
			}
			if err := tx.Model(&user).Association("Roles").Replace(roles); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar o usuário: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func UpdateUserHandler(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	var input userInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.Login = input.Login
	user.FullName = input.FullName
	user.Email = input.Email
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível processar a senha"})
			return
		}
		user.PasswordHash = string(hash)
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		var roles []models.Role
		if len(input.RoleIDs) > 0 {
			if err := tx.Where("id IN ?", input.RoleIDs).Find(&roles).Error; err != nil {
				return err
			}
		}
		return tx.Model(&user).Association("Roles").Replace(roles)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o usuário"})
		return
	}

	// Roles may have changed: the cached session is stale now.
	middleware.DropSession(user.ID)
	c.JSON(http.StatusOK, user)
}

func DeleteUserHandler(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	if session, ok := middleware.CurrentSession(c); ok && session.UserID == user.ID {
		c.JSON(http.StatusConflict, gin.H{"error": "Não é possível excluir o próprio usuário"})
		return
	}

	if err := config.DB.Select("Roles").Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o usuário"})
		return
	}

	middleware.DropSession(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Usuário %s excluído", user.Login)})
}
