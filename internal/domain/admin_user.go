package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminUser is a back-office account. PasswordHash is bcrypt and must be
// stripped from every API response.
type AdminUser struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type AdminUserPatch struct {
	Email    *string `json:"email"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin super_admin"`
	IsActive *bool   `json:"isActive"`
}
