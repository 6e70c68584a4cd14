package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSessionHasPermission(t *testing.T) {
	s := &Session{
		UserID:      7,
		Login:       "coach",
		Roles:       []string{"coach"},
		Permissions: []string{"students_view", "attendance_edit"},
	}

	assert.True(t, s.HasPermission("students_view"))
	assert.True(t, s.HasPermission("attendance_edit"))
	assert.False(t, s.HasPermission("users_delete"))
}

func TestSessionAdminHasEveryPermission(t *testing.T) {
	s := &Session{UserID: 1, Login: "admin", Roles: []string{"admin"}}

	assert.True(t, s.IsAdmin())
	assert.True(t, s.HasPermission("anything_at_all"))
}

func TestPermissionMiddlewareAllowsGrantedPermission(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/students", nil)
	SetTestSession(c, &Session{UserID: 2, Login: "coach", Permissions: []string{"students_view"}})

	called := false
	PermissionMiddleware("students_view")(c)
	if !c.IsAborted() {
		called = true
	}

	assert.True(t, called)
	assert.False(t, c.IsAborted())
}

func TestPermissionMiddlewareRejectsMissingPermission(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/users/3", nil)
	SetTestSession(c, &Session{UserID: 2, Login: "coach", Permissions: []string{"students_view"}})

	PermissionMiddleware("users_delete")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPermissionMiddlewareRejectsMissingSession(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/students", nil)

	PermissionMiddleware("students_view")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}
