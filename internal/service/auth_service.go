package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/repository"
	"github.com/warungpo/preorder_api/internal/utils"
)

// AuthService authenticates dashboard admins.
type AuthService struct {
	adminRepo *repository.AdminUserRepository
}

// NewAuthService constructs an AuthService.
func NewAuthService(adminRepo *repository.AdminUserRepository) *AuthService {
	return &AuthService{adminRepo: adminRepo}
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the signed-in admin.
type LoginResponse struct {
	Token string            `json:"token"`
	User  *models.AdminUser `json:"user"`
}

// Login verifies credentials and issues a JWT. Unknown emails and wrong
// passwords produce the same error so the response never reveals which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, utils.ErrAccountInactive
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Msg("Admin logged in")

	return &LoginResponse{Token: token, User: user}, nil
}

// CurrentUser loads the admin behind a validated token, for the session
// endpoint the dashboard calls on load.
func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*models.AdminUser, error) {
	user, err := s.adminRepo.GetByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, utils.ErrAccountInactive
	}
	return user, nil
}
