package repositories

import (
	"errors"

	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type ReviewRepo interface {
	Create(review *models.Review) error
	ListByFreelancer(freelancerID uint) ([]models.Review, error)
	ExistsForProject(projectID, reviewerID uint) (bool, error)
	DeleteByProject(projectID uint) error
}

type DBReviewRepo struct {
	db *gorm.DB
}

func (r *DBReviewRepo) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *DBReviewRepo) ListByFreelancer(freelancerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Reviewer").Where("freelancer_id = ?", freelancerID).Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (r *DBReviewRepo) ExistsForProject(projectID, reviewerID uint) (bool, error) {
	var review models.Review
	err := r.db.Where("project_id = ? AND reviewer_id = ?", projectID, reviewerID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DBReviewRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Review{}).Error
}
