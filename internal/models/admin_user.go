package models

import "time"

// AdminRole enumerates panel roles. A super_admin passes every role gate.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

// ValidAdminRole reports whether r is a known role.
func ValidAdminRole(r string) bool {
	return AdminRole(r) == RoleAdmin || AdminRole(r) == RoleSuperAdmin
}

// AdminUser represents an admin account for the dashboard.
type AdminUser struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         AdminRole `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
