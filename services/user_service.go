package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
)

// ErrInvalidCredentials is returned for a failed staff login
var ErrInvalidCredentials = errors.New("invalid credentials or insufficient privileges")

// UserService interface defines staff account operations
type UserService interface {
	Authenticate(ctx context.Context, form models.LoginForm) (*models.User, error)
	AuthenticateByEmail(ctx context.Context, email string) (*models.User, error)
	ResolveActor(ctx context.Context, userID int64) (*models.Actor, error)
	ProvisionUser(ctx context.Context, actor *models.Actor, form models.RegisterUserForm) (*models.User, error)
	BootstrapUser(ctx context.Context, form models.RegisterUserForm) (*models.User, error)
}

// userService implements UserService interface
type userService struct {
	tx    repositories.Transactor
	users repositories.UserRepository
	audit *AuditRecorder
	cost  int
}

// NewUserService creates a new user service hashing passwords at bcrypt.DefaultCost
func NewUserService(tx repositories.Transactor, users repositories.UserRepository, audit *AuditRecorder) UserService {
	return &userService{
		tx:    tx,
		users: users,
		audit: audit,
		cost:  bcrypt.DefaultCost,
	}
}

// Authenticate checks a username and password. Only admins and moderators may log in.
func (s *userService) Authenticate(ctx context.Context, form models.LoginForm) (*models.User, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(form.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		log.Warn("failed login", "username", user.Username)
		return nil, ErrInvalidCredentials
	}

	if !isStaff(user) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// AuthenticateByEmail matches an SSO identity to an existing staff account
func (s *userService) AuthenticateByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !isStaff(user) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ResolveActor loads the current role of a session's user. A missing or
// inactive account resolves to nil, an anonymous requester.
func (s *userService) ResolveActor(ctx context.Context, userID int64) (*models.Actor, error) {
	user, err := s.users.GetByID(ctx, userID)
	if models.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, nil
	}

	return models.ActorFromUser(user), nil
}

// ProvisionUser creates a staff account. Only admins may call it.
func (s *userService) ProvisionUser(ctx context.Context, actor *models.Actor, form models.RegisterUserForm) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, &models.AuthorizationError{Action: "register user"}
	}
	return s.createUser(ctx, actor, form)
}

// BootstrapUser creates a staff account without an acting user, for the CLI
func (s *userService) BootstrapUser(ctx context.Context, form models.RegisterUserForm) (*models.User, error) {
	return s.createUser(ctx, nil, form)
}

func (s *userService) createUser(ctx context.Context, actor *models.Actor, form models.RegisterUserForm) (*models.User, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cost)
	if err != nil {
		return nil, err
	}

	role, _ := models.ParseRole(form.Role)
	user := &models.User{
		Username:     strings.TrimSpace(form.Username),
		Email:        strings.TrimSpace(form.Email),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	err = s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		existing, err := repos.Users.GetByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.NewValidationError("Username already exists")
		}

		existing, err = repos.Users.GetByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.NewValidationError("Email already registered")
		}

		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}

		return s.audit.Record(ctx, repos.Audit, models.RecordRef{Table: models.TableUsers, ID: user.ID}, models.ActionCreate, models.AuditChange{
			Field:    "role",
			NewValue: string(user.Role),
		}, actor)
	})
	if err != nil {
		return nil, err
	}

	log.Info("user provisioned", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

func isStaff(user *models.User) bool {
	return user.IsActive && (user.Role == models.RoleAdmin || user.Role == models.RoleModerator)
}
