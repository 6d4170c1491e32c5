package models

import "time"

// RoleSuperAdmin bypasses all permission checks unconditionally.
const RoleSuperAdmin = "super_admin"

// Admin is a dashboard operator account. Permissions is a flat set of
// permission strings checked verbatim by the authorization gate.
type Admin struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Avatar      string    `json:"avatar,omitempty"`
	LastLogin   time.Time `json:"lastLogin,omitempty"`

	// PasswordHash is the bcrypt hash of the admin's password. Never
	// serialized to API responses.
	PasswordHash string `json:"-"`
}

// User is an end customer of the booking application, managed read-mostly
// from the dashboard.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Favorites []string  `json:"favorites,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
