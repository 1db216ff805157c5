package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/repository"
	"github.com/warungpo/preorder_api/internal/utils"
)

const minPasswordLength = 8

// AdminUserService manages admin accounts. All of it sits behind the
// super-admin gate except the startup bootstrap.
type AdminUserService struct {
	adminRepo *repository.AdminUserRepository
}

// NewAdminUserService constructs an AdminUserService.
func NewAdminUserService(adminRepo *repository.AdminUserRepository) *AdminUserService {
	return &AdminUserService{adminRepo: adminRepo}
}

// List returns all admin accounts.
func (s *AdminUserService) List(ctx context.Context) ([]models.AdminUser, error) {
	users, err := s.adminRepo.List()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.AdminUser{}
	}
	return users, nil
}

// CreateAdminRequest represents the request to create an admin account.
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Create adds an admin account with a bcrypt-hashed password.
func (s *AdminUserService) Create(ctx context.Context, req *CreateAdminRequest) (*models.AdminUser, error) {
	if !models.ValidAdminRole(req.Role) {
		return nil, ValidationErrors{"role": "role must be admin or super_admin"}
	}
	if len(req.Password) < minPasswordLength {
		return nil, ValidationErrors{"password": "password must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         models.AdminRole(req.Role),
		IsActive:     true,
	}

	if err := s.adminRepo.Create(user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, utils.ErrEmailExists
		}
		return nil, err
	}

	log.Info().
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Msg("Admin account created")

	return user, nil
}

// SetActive enables or disables an account. A disabled admin keeps their
// row but can no longer log in.
func (s *AdminUserService) SetActive(ctx context.Context, id int, isActive bool) (*models.AdminUser, error) {
	user, err := s.adminRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}
	if err := s.adminRepo.SetActive(user.ID, isActive); err != nil {
		return nil, err
	}
	user.IsActive = isActive
	return user, nil
}

// Bootstrap creates the first super admin from environment config when the
// table is empty. It is a no-op once any account exists.
func (s *AdminUserService) Bootstrap(ctx context.Context, name, email, password string) error {
	count, err := s.adminRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		log.Warn().Msg("No admin accounts exist and no bootstrap credentials configured")
		return nil
	}

	if name == "" {
		name = "Super Admin"
	}
	_, err = s.Create(ctx, &CreateAdminRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     string(models.RoleSuperAdmin),
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Bootstrapped initial super admin")
	return nil
}
