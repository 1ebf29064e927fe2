package services

import (
	"errors"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"gorm.io/gorm"
)

var (
	ErrNotProjectClient    = errors.New("only the project's client can leave a review")
	ErrProjectNotCompleted = errors.New("project is not completed")
	ErrAlreadyReviewed     = errors.New("project already reviewed")
)

type ReviewService struct {
	repos      *repositories.Repos
	dispatcher *NotificationDispatcher
	pub        events.Publisher
}

// Create applies the three guards in order: client ownership, completed
// status, no prior review. First failure wins.
func (s *ReviewService) Create(actorID, projectID uint, input dto.CreateReviewDTO) (models.Review, error) {
	project, err := s.repos.Project.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Review{}, ErrProjectNotFound
		}
		return models.Review{}, err
	}

	if project.ClientID != actorID {
		return models.Review{}, ErrNotProjectClient
	}
	if project.Status != models.ProjectStatusCompleted || project.FreelancerID == nil {
		return models.Review{}, ErrProjectNotCompleted
	}

	exists, err := s.repos.Review.ExistsForProject(projectID, actorID)
	if err != nil {
		return models.Review{}, err
	}
	if exists {
		return models.Review{}, ErrAlreadyReviewed
	}

	review := models.Review{
		ProjectID:    projectID,
		ReviewerID:   actorID,
		FreelancerID: *project.FreelancerID,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Review.Create(&review); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyReviewed
			}
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.ReviewSubmitted{Review: review, Project: project})
		return err
	})
	if err != nil {
		return models.Review{}, err
	}

	signal(s.pub, created)
	return review, nil
}

func (s *ReviewService) ListForFreelancer(freelancerID uint) ([]models.Review, error) {
	return s.repos.Review.ListByFreelancer(freelancerID)
}
