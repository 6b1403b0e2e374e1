package models

// User represents an application account stored in users.json.
// Timestamps are kept as ISO-8601 strings so the file stays readable
// and compatible with records written by earlier deployments.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"password_hash"`
	CreatedAt    string  `json:"created_at"`
	Role         string  `json:"role"`
	IsActive     bool    `json:"is_active"`
	LastLogin    *string `json:"last_login"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
