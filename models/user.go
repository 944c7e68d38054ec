package models

import (
	"strings"
	"time"
)

// Role is the privilege level of a user account
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// ParseRole validates a role name
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleModerator:
		return RoleModerator, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// User represents a stored account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Actor is the identity performing a request, resolved fresh from the store
// on every request. A nil *Actor is an anonymous requester.
type Actor struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// ActorFromUser builds an Actor from a stored user
func ActorFromUser(u *User) *Actor {
	return &Actor{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// CanModerate reports whether the actor may approve, reject and resolve
func (a *Actor) CanModerate() bool {
	return a != nil && (a.Role == RoleAdmin || a.Role == RoleModerator)
}

// IsAdmin reports whether the actor may provision other staff accounts
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// ID returns the actor's user id, or nil for anonymous requesters
func (a *Actor) ID() *int64 {
	if a == nil {
		return nil
	}
	id := a.UserID
	return &id
}

// LoginForm represents the admin login form
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the login form data
func (f *LoginForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Username) == "" {
		errors = append(errors, "Username is required")
	}
	if f.Password == "" {
		errors = append(errors, "Password is required")
	}

	return errors
}

// RegisterUserForm represents form data for provisioning a staff account
type RegisterUserForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
}

// Validate validates the registration form data
func (f *RegisterUserForm) Validate() []string {
	var errors []string

	username := strings.TrimSpace(f.Username)
	if username == "" {
		errors = append(errors, "Username is required")
	}
	if len(username) > 80 {
		errors = append(errors, "Username must be less than 80 characters")
	}

	if f.Email == "" {
		errors = append(errors, "Email is required")
	} else if len(f.Email) > 120 || !isValidEmail(f.Email) {
		errors = append(errors, "Email format is invalid")
	}

	if len(f.Password) < 8 {
		errors = append(errors, "Password must be at least 8 characters")
	}
	if f.Password != f.ConfirmPassword {
		errors = append(errors, "Passwords do not match")
	}

	// Only staff roles are provisioned here
	role, ok := ParseRole(f.Role)
	if !ok || role == RoleUser {
		errors = append(errors, "Role must be admin or moderator")
	}

	return errors
}
