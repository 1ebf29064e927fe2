package services

import (
	"testing"

	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"github.com/Krasmol/platform-for-freelancers/repositories/mock_repositories"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupNotificationServiceMocks(t *testing.T) (*NotificationService, *mock_repositories.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	repos := &repositories.Repos{Notification: mockNotification}
	svc := &NotificationService{repos: repos}
	return svc, mockNotification
}

func TestMarkRead_Owner(t *testing.T) {
	svc, mockNotification := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().FindByID(uint(50)).Return(models.Notification{ID: 50, UserID: 3}, nil)
	mockNotification.EXPECT().MarkRead(uint(50)).Return(nil)

	assert.NoError(t, svc.MarkRead(3, 50))
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc, mockNotification := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().FindByID(uint(50)).Return(models.Notification{ID: 50, UserID: 3, IsRead: true}, nil).Times(2)
	mockNotification.EXPECT().MarkRead(uint(50)).Return(nil).Times(2)

	assert.NoError(t, svc.MarkRead(3, 50))
	assert.NoError(t, svc.MarkRead(3, 50))
}

func TestMarkRead_NotOwner(t *testing.T) {
	svc, mockNotification := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().FindByID(uint(50)).Return(models.Notification{ID: 50, UserID: 3}, nil)

	assert.Equal(t, ErrAccessDenied, svc.MarkRead(99, 50))
}

func TestMarkRead_Missing(t *testing.T) {
	svc, mockNotification := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().FindByID(uint(50)).Return(models.Notification{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrNotificationNotFound, svc.MarkRead(3, 50))
}

func TestMarkAllRead_ScopedToCaller(t *testing.T) {
	svc, mockNotification := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().MarkAllRead(uint(3)).Return(nil)

	assert.NoError(t, svc.MarkAllRead(3))
}

func TestDeleteNotification_NotOwner(t *testing.T) {
	svc, mockNotification := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().FindByID(uint(50)).Return(models.Notification{ID: 50, UserID: 3}, nil)

	assert.Equal(t, ErrAccessDenied, svc.Delete(99, 50))
}
