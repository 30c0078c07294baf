package models

import "time"

// User is a shopper session identity. Login fabricates one from whatever
// email/password pair is supplied; it exists to attribute reviews and order
// history, nothing more.
type User struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// Admin roles in descending privilege.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
)

// ValidRole reports whether r is a recognised admin role.
func ValidRole(r string) bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleStaff
}

// AdminUser is a back-office account.
type AdminUser struct {
	BaseModel
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// ActivityLog records a back-office action for the audit trail.
type ActivityLog struct {
	BaseModel
	AdminID   string `json:"admin_id"`
	AdminName string `json:"admin_name"`
	Action    string `json:"action"`
	IP        string `json:"ip,omitempty"`
}
