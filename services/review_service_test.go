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

func setupReviewServiceMocks(t *testing.T) (*ReviewService, *mock_repositories.MockProjectRepo, *mock_repositories.MockReviewRepo, *mock_repositories.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock_repositories.NewMockProjectRepo(ctrl)
	mockReview := mock_repositories.NewMockReviewRepo(ctrl)
	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	repos := &repositories.Repos{
		Project:      mockProject,
		Review:       mockReview,
		Notification: mockNotification,
	}
	svc := &ReviewService{repos: repos, dispatcher: NewNotificationDispatcher()}
	return svc, mockProject, mockReview, mockNotification
}

func completedProject() models.Project {
	freelancerID := uint(5)
	return models.Project{
		ID:           10,
		Title:        "API work",
		Status:       models.ProjectStatusCompleted,
		ClientID:     3,
		FreelancerID: &freelancerID,
	}
}

func TestCreateReview_Success(t *testing.T) {
	svc, mockProject, mockReview, mockNotification := setupReviewServiceMocks(t)

	mockProject.EXPECT().FindByID(uint(10)).Return(completedProject(), nil)
	mockReview.EXPECT().ExistsForProject(uint(10), uint(3)).Return(false, nil)
	mockReview.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Review) error {
		assert.Equal(t, uint(5), r.FreelancerID)
		assert.Equal(t, 5, r.Rating)
		return nil
	})
	mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(t, uint(5), n.UserID)
		assert.Equal(t, models.NotificationTypeReview, n.Type)
		return nil
	})

	review, err := svc.Create(3, 10, dto.CreateReviewDTO{Rating: 5, Comment: "great work"})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), review.ReviewerID)
}

func TestCreateReview_NotClient(t *testing.T) {
	svc, mockProject, _, _ := setupReviewServiceMocks(t)

	mockProject.EXPECT().FindByID(uint(10)).Return(completedProject(), nil)

	_, err := svc.Create(99, 10, dto.CreateReviewDTO{Rating: 4})
	assert.Equal(t, ErrNotProjectClient, err)
}

func TestCreateReview_NotCompleted(t *testing.T) {
	svc, mockProject, _, _ := setupReviewServiceMocks(t)

	project := completedProject()
	project.Status = models.ProjectStatusInProgress
	mockProject.EXPECT().FindByID(uint(10)).Return(project, nil)

	_, err := svc.Create(3, 10, dto.CreateReviewDTO{Rating: 4})
	assert.Equal(t, ErrProjectNotCompleted, err)
}

func TestCreateReview_AlreadyReviewed(t *testing.T) {
	svc, mockProject, mockReview, _ := setupReviewServiceMocks(t)

	mockProject.EXPECT().FindByID(uint(10)).Return(completedProject(), nil)
	mockReview.EXPECT().ExistsForProject(uint(10), uint(3)).Return(true, nil)

	_, err := svc.Create(3, 10, dto.CreateReviewDTO{Rating: 4})
	assert.Equal(t, ErrAlreadyReviewed, err)
}

func TestCreateReview_DuplicateRace(t *testing.T) {
	svc, mockProject, mockReview, _ := setupReviewServiceMocks(t)

	mockProject.EXPECT().FindByID(uint(10)).Return(completedProject(), nil)
	mockReview.EXPECT().ExistsForProject(uint(10), uint(3)).Return(false, nil)
	mockReview.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(3, 10, dto.CreateReviewDTO{Rating: 4})
	assert.Equal(t, ErrAlreadyReviewed, err)
}
