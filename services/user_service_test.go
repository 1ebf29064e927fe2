package services

import (
	"testing"
	"time"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/middleware"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"github.com/Krasmol/platform-for-freelancers/repositories/mock_repositories"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo, *mock_repositories.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	repos := &repositories.Repos{
		User:         mockUser,
		Notification: mockNotification,
	}
	svc := &UserService{repos: repos, dispatcher: NewNotificationDispatcher()}
	return svc, mockUser, mockNotification
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser, mockNotification := setupUserServiceMocks(t)

	input := dto.RegisterInput{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "123456",
		Role:     "freelancer",
	}

	mockUser.EXPECT().FindByEmail("alice@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.UserRoleFreelancer, u.Role)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "123456", u.Password)
		u.ID = 7
		return nil
	})
	mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(t, uint(7), n.UserID)
		assert.Equal(t, models.NotificationTypeSystem, n.Type)
		return nil
	})

	user, err := svc.Register(input)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("taken@test.com").Return(models.User{ID: 1}, nil)

	input := dto.RegisterInput{Username: "bob", Email: "taken@test.com", Password: "123456", Role: "client"}
	_, err := svc.Register(input)
	assert.Equal(t, ErrEmailTaken, err)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("bob@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	input := dto.RegisterInput{Username: "bob", Email: "bob@test.com", Password: "123456", Role: "client"}
	_, err := svc.Register(input)
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{ID: 1, Username: "bob", Email: "bob@test.com", Password: string(hashed), Role: models.UserRoleClient, IsActive: true}

	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username, role string, expireDuration time.Duration) (string, error) {
		assert.Equal(t, "client", role)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("bob@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLogin_InvalidPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{ID: 1, Username: "bob", Password: string(hashed), IsActive: true}

	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	_, token, err := svc.Login("bob@test.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("ghost@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost@test.com", "123456")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_BlockedAccount(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{ID: 1, Username: "bob", Password: string(hashed), IsActive: false}

	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	_, _, err := svc.Login("bob@test.com", "123456")
	assert.Equal(t, ErrAccountBlocked, err)
}
