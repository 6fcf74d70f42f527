package domain

import "time"

// UserRole controls what a back-office user may do. Admins manage users and
// the chart of accounts, accountants run the ledger, read-only users see
// reports but cannot mutate anything.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleAccountant UserRole = "ACCOUNTANT"
	RoleReadOnly   UserRole = "READONLY"
)

// User represents a back-office user of the application.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
