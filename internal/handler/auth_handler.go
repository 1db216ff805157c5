package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/middleware"
	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// AuthHandler serves admin authentication.
type AuthHandler struct {
	authService *service.AuthService
	rateLimiter *middleware.FailedLoginRateLimiter
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService, rateLimiter *middleware.FailedLoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

// Login handles POST /api/auth/login. Failed attempts are rate limited
// per IP.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if h.rateLimiter != nil && !h.rateLimiter.Allow(c.ClientIP()) {
			utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many failed login attempts, try again later")
			return
		}
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Login successful", result)
}

// Me handles GET /api/auth/me. Returns the admin behind the presented
// token so the dashboard can restore its session.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		respondError(c, utils.ErrInvalidToken)
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Session retrieved", user)
}
