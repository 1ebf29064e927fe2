package services

import (
	"testing"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"github.com/Krasmol/platform-for-freelancers/repositories/mock_repositories"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupProfileServiceMocks(t *testing.T) (*ProfileService, *mock_repositories.MockProfileRepo, *mock_repositories.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProfile := mock_repositories.NewMockProfileRepo(ctrl)
	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	repos := &repositories.Repos{
		Profile:      mockProfile,
		Notification: mockNotification,
	}
	svc := &ProfileService{repos: repos, dispatcher: NewNotificationDispatcher()}
	return svc, mockProfile, mockNotification
}

func TestCreateProfile_Success(t *testing.T) {
	svc, mockProfile, mockNotification := setupProfileServiceMocks(t)

	mockProfile.EXPECT().FindByUserID(uint(5)).Return(models.Profile{}, gorm.ErrRecordNotFound)
	mockProfile.EXPECT().Create(gomock.Any()).Return(nil)
	mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(t, uint(5), n.UserID)
		return nil
	})

	profile, err := svc.Create(5, dto.CreateProfileInput{FullName: "Frank Ocean", Title: "Go developer"})
	assert.NoError(t, err)
	assert.Equal(t, "Frank Ocean", profile.FullName)
}

func TestCreateProfile_AlreadyExists(t *testing.T) {
	svc, mockProfile, _ := setupProfileServiceMocks(t)

	mockProfile.EXPECT().FindByUserID(uint(5)).Return(models.Profile{ID: 1, UserID: 5}, nil)

	_, err := svc.Create(5, dto.CreateProfileInput{FullName: "Frank"})
	assert.Equal(t, ErrProfileExists, err)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	svc, mockProfile, _ := setupProfileServiceMocks(t)

	existing := models.Profile{ID: 1, UserID: 5, FullName: "Frank Ocean", Title: "Go developer", HourlyRate: 40}
	mockProfile.EXPECT().FindByUserID(uint(5)).Return(existing, nil)
	mockProfile.EXPECT().Save(gomock.Any()).Return(nil)

	rate := 55.0
	profile, err := svc.Update(5, dto.UpdateProfileInput{HourlyRate: &rate})
	assert.NoError(t, err)
	assert.Equal(t, 55.0, profile.HourlyRate)
	assert.Equal(t, "Frank Ocean", profile.FullName)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc, mockProfile, _ := setupProfileServiceMocks(t)

	mockProfile.EXPECT().FindByUserID(uint(5)).Return(models.Profile{}, gorm.ErrRecordNotFound)

	_, err := svc.Update(5, dto.UpdateProfileInput{})
	assert.Equal(t, ErrProfileNotFound, err)
}
