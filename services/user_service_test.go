package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
	"github.com/badapples/registry/repositories/mocks"
)

// UserServiceTestSuite is a test suite for staff accounts
type UserServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	service   *userService
	mockTx    *mocks.MockTransactor
	mockUsers *mocks.MockUserRepository
	mockAudit *mocks.MockAuditRepository
}

// SetupTest sets up the test suite before each test
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockTx = mocks.NewMockTransactor(suite.T())
	suite.mockUsers = mocks.NewMockUserRepository(suite.T())
	suite.mockAudit = mocks.NewMockAuditRepository(suite.T())

	txRepos := &repositories.Repositories{Users: suite.mockUsers, Audit: suite.mockAudit}
	suite.mockTx.EXPECT().WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(*repositories.Repositories) error) error {
			return fn(txRepos)
		}).Maybe()

	suite.service = &userService{
		tx:    suite.mockTx,
		users: suite.mockUsers,
		audit: NewAuditRecorder(),
		cost:  bcrypt.MinCost,
	}
}

func (suite *UserServiceTestSuite) hashed(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(suite.T(), err)
	return string(hash)
}

func registerForm() models.RegisterUserForm {
	return models.RegisterUserForm{
		Username:        "newmod",
		Email:           "newmod@example.com",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
		Role:            "moderator",
	}
}

// TestAuthenticate tests password login for staff accounts
func (suite *UserServiceTestSuite) TestAuthenticate() {
	staff := &models.User{ID: 2, Username: "mod", PasswordHash: suite.hashed("s3cret-pass"), Role: models.RoleModerator, IsActive: true}
	suite.mockUsers.EXPECT().GetByUsername(suite.ctx, "mod").Return(staff, nil)

	user, err := suite.service.Authenticate(suite.ctx, models.LoginForm{Username: "mod", Password: "s3cret-pass"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), user.ID)

	_, err = suite.service.Authenticate(suite.ctx, models.LoginForm{Username: "mod", Password: "wrong"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestAuthenticate_NonStaff tests that plain users and unknown names cannot log in
func (suite *UserServiceTestSuite) TestAuthenticate_NonStaff() {
	plain := &models.User{ID: 3, Username: "viewer", PasswordHash: suite.hashed("s3cret-pass"), Role: models.RoleUser, IsActive: true}
	suite.mockUsers.EXPECT().GetByUsername(suite.ctx, "viewer").Return(plain, nil)
	suite.mockUsers.EXPECT().GetByUsername(suite.ctx, "ghost").Return(nil, nil)

	_, err := suite.service.Authenticate(suite.ctx, models.LoginForm{Username: "viewer", Password: "s3cret-pass"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	_, err = suite.service.Authenticate(suite.ctx, models.LoginForm{Username: "ghost", Password: "s3cret-pass"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	_, err = suite.service.Authenticate(suite.ctx, models.LoginForm{})
	assert.True(suite.T(), models.IsValidation(err))
}

// TestResolveActor tests that roles are read fresh and inactive accounts resolve to anonymous
func (suite *UserServiceTestSuite) TestResolveActor() {
	suite.mockUsers.EXPECT().GetByID(suite.ctx, int64(1)).
		Return(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin, IsActive: true}, nil)
	suite.mockUsers.EXPECT().GetByID(suite.ctx, int64(2)).
		Return(&models.User{ID: 2, Username: "former", Role: models.RoleModerator, IsActive: false}, nil)
	suite.mockUsers.EXPECT().GetByID(suite.ctx, int64(3)).
		Return(nil, &models.NotFoundError{Resource: "user", ID: 3})

	actor, err := suite.service.ResolveActor(suite.ctx, 1)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), actor.IsAdmin())

	actor, err = suite.service.ResolveActor(suite.ctx, 2)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), actor)

	actor, err = suite.service.ResolveActor(suite.ctx, 3)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), actor)
}

// TestProvisionUser_Success tests account creation with an audit entry on users
func (suite *UserServiceTestSuite) TestProvisionUser_Success() {
	suite.mockUsers.EXPECT().GetByUsername(suite.ctx, "newmod").Return(nil, nil)
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, "newmod@example.com").Return(nil, nil)
	suite.mockUsers.EXPECT().Create(suite.ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleModerator &&
			u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")) == nil
	})).Run(func(ctx context.Context, u *models.User) {
		u.ID = 12
	}).Return(nil)
	suite.mockAudit.EXPECT().Create(suite.ctx, auditWith(models.ActionCreate, func(e *models.AuditLogEntry) bool {
		return e.TableName == models.TableUsers && e.RecordID == 12 && *e.UserID == admin.UserID
	})).Return(nil)

	user, err := suite.service.ProvisionUser(suite.ctx, admin, registerForm())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), user.ID)
}

// TestProvisionUser_AdminOnly tests that moderators cannot provision accounts
func (suite *UserServiceTestSuite) TestProvisionUser_AdminOnly() {
	_, err := suite.service.ProvisionUser(suite.ctx, moderator, registerForm())

	assert.True(suite.T(), models.IsAuthorization(err))
	suite.mockTx.AssertNotCalled(suite.T(), "WithTx", mock.Anything, mock.Anything)
}

// TestProvisionUser_Duplicates tests that usernames and emails stay unique
func (suite *UserServiceTestSuite) TestProvisionUser_Duplicates() {
	suite.mockUsers.EXPECT().GetByUsername(suite.ctx, "newmod").Return(&models.User{ID: 4}, nil).Once()

	_, err := suite.service.ProvisionUser(suite.ctx, admin, registerForm())
	var verr *models.ValidationError
	require.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), []string{"Username already exists"}, verr.Messages)

	suite.mockUsers.EXPECT().GetByUsername(suite.ctx, "newmod").Return(nil, nil).Once()
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, "newmod@example.com").Return(&models.User{ID: 5}, nil).Once()

	_, err = suite.service.ProvisionUser(suite.ctx, admin, registerForm())
	require.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), []string{"Email already registered"}, verr.Messages)
}

// TestProvisionUser_PasswordMismatch tests form validation
func (suite *UserServiceTestSuite) TestProvisionUser_PasswordMismatch() {
	form := registerForm()
	form.ConfirmPassword = "something else"

	_, err := suite.service.ProvisionUser(suite.ctx, admin, form)

	assert.True(suite.T(), models.IsValidation(err))
}

// TestBootstrapUser tests CLI creation with an anonymous audit entry
func (suite *UserServiceTestSuite) TestBootstrapUser() {
	form := registerForm()
	form.Role = "admin"
	suite.mockUsers.EXPECT().GetByUsername(suite.ctx, "newmod").Return(nil, nil)
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, "newmod@example.com").Return(nil, nil)
	suite.mockUsers.EXPECT().Create(suite.ctx, mock.Anything).Return(nil)
	suite.mockAudit.EXPECT().Create(suite.ctx, auditWith(models.ActionCreate, func(e *models.AuditLogEntry) bool {
		return e.UserID == nil && e.IPAddress == "unknown"
	})).Return(nil)

	user, err := suite.service.BootstrapUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleAdmin, user.Role)
}

// TestUserServiceTestSuite runs the user service test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
