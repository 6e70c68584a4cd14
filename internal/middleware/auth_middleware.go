package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

const sessionContextKey = "session"

// sessionTTL bounds how long cached role/permission data may lag behind the
// database.
const sessionTTL = 10 * time.Minute

// Session is the authenticated principal for one request: identity plus the
// resolved roles and permissions. It is built at login, cached with a TTL,
// and injected into the request context. There is no ambient current-user
// state anywhere else.
type Session struct {
	UserID      uint     `json:"user_id"`
	Login       string   `json:"login"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

// IsAdmin reports whether the session carries the admin role, which implies
// every permission.
func (s *Session) IsAdmin() bool {
	for _, role := range s.Roles {
		if role == "admin" {
			return true
		}
	}
	return false
}

// HasPermission checks one named permission, honoring the admin shortcut.
func (s *Session) HasPermission(name string) bool {
	if s.IsAdmin() {
		return true
	}
	for _, p := range s.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// CurrentSession extracts the session placed in the context by AuthMiddleware.
func CurrentSession(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*Session)
	return session, ok
}

func sessionCacheKey(userID uint) string {
	return fmt.Sprintf("session:%d", userID)
}

// BuildSession loads a user's roles and permissions from the database.
func BuildSession(userID uint) (*Session, error) {
	var user models.User
	if err := config.DB.Preload("Roles").First(&user, userID).Error; err != nil {
		return nil, err
	}

	var roleIDs []uint
	var roleNames []string
	for _, role := range user.Roles {
		roleIDs = append(roleIDs, role.ID)
		roleNames = append(roleNames, role.Name)
	}

	var permissions []string
	if len(roleIDs) > 0 {
		config.DB.Table("permissions").
			Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
			Where("role_permissions.role_id IN ?", roleIDs).
			Distinct().
			Pluck("name", &permissions)
	}

	return &Session{
		UserID:      user.ID,
		Login:       user.Login,
		Roles:       roleNames,
		Permissions: permissions,
	}, nil
}

// CacheSession stores the session in Redis. A cache miss is never fatal: the
// middleware rebuilds from the database.
func CacheSession(session *Session) {
	if config.RDB == nil {
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		slog.Error("Failed to marshal session for caching", "error", err, "user_id", session.UserID)
		return
	}
	if err := config.RDB.Set(config.Ctx, sessionCacheKey(session.UserID), data, sessionTTL).Err(); err != nil {
		slog.Error("Failed to cache session", "error", err, "user_id", session.UserID)
	}
}

// DropSession removes a cached session, forcing the next request to rebuild
// it. Called on logout and whenever a user's roles change.
func DropSession(userID uint) {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, sessionCacheKey(userID)).Err(); err != nil {
		slog.Error("Failed to drop cached session", "error", err, "user_id", userID)
	}
}

func cachedSession(userID uint) *Session {
	if config.RDB == nil {
		return nil
	}
	data, err := config.RDB.Get(config.Ctx, sessionCacheKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Error("Redis GET failed", "error", err, "user_id", userID)
		}
		return nil
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		slog.Warn("Failed to unmarshal cached session", "user_id", userID)
		return nil
	}
	return &session
}

// AuthMiddleware validates the session token (cookie or bearer header) and
// injects the resolved Session into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				handleAuthError(c, "Token de autenticação não informado")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				handleAuthError(c, "Cabeçalho Authorization inválido")
				return
			}
			tokenStr = parts[1]
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Token inválido ou expirado")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			handleAuthError(c, "Token com claims inválidas")
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			handleAuthError(c, "Token sem identificação de usuário")
			return
		}
		userID := uint(userIDFloat)

		if session := cachedSession(userID); session != nil {
			c.Set(sessionContextKey, session)
			c.Next()
			return
		}

		session, err := BuildSession(userID)
		if err != nil {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Usuário do token não encontrado")
			return
		}
		CacheSession(session)

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// PermissionMiddleware gates a route on one named permission.
func PermissionMiddleware(requiredPermission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Sessão não encontrada"})
			c.Abort()
			return
		}

		if !session.HasPermission(requiredPermission) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Permissão negada"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func handleAuthError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

// SetTestSession injects a session directly, bypassing token validation.
// Only for handler tests.
func SetTestSession(c *gin.Context, session *Session) {
	c.Set(sessionContextKey, session)
}
