package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/utils"
)

func roleRouter(required models.AdminRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewJWTMiddleware().Handle(), RequireRole(required), func(c *gin.Context) {
		c.String(200, "ok")
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := roleRouter(models.RoleAdmin)

	w := doRequest(t, r, "")
	assert.Equal(t, 401, w.Code)

	w = doRequest(t, r, "not-a-token")
	assert.Equal(t, 401, w.Code)
}

func TestRequireRolePassesMatchingRole(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	token, err := utils.GenerateJWT(1, "admin@example.com", string(models.RoleAdmin))
	require.NoError(t, err)

	w := doRequest(t, roleRouter(models.RoleAdmin), token)
	assert.Equal(t, 200, w.Code)
}

func TestRequireRoleSuperAdminPassesAnyGate(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	token, err := utils.GenerateJWT(1, "root@example.com", string(models.RoleSuperAdmin))
	require.NoError(t, err)

	w := doRequest(t, roleRouter(models.RoleAdmin), token)
	assert.Equal(t, 200, w.Code)

	w = doRequest(t, roleRouter(models.RoleSuperAdmin), token)
	assert.Equal(t, 200, w.Code)
}

func TestRequireRoleBlocksInsufficientRole(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	token, err := utils.GenerateJWT(1, "admin@example.com", string(models.RoleAdmin))
	require.NoError(t, err)

	w := doRequest(t, roleRouter(models.RoleSuperAdmin), token)
	assert.Equal(t, 403, w.Code)
}
