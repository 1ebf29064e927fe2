package repositories

import (
	"errors"

	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type ResponseRepo interface {
	Create(resp *models.ProjectResponse) error
	FindByID(id uint) (models.ProjectResponse, error)
	ListByProject(projectID uint) ([]models.ProjectResponse, error)
	HasResponded(projectID, freelancerID uint) (bool, error)
	RejectSiblings(projectID, acceptedID uint) error
	Save(resp *models.ProjectResponse) error
	DeleteByProject(projectID uint) error
}

type DBResponseRepo struct {
	db *gorm.DB
}

func (r *DBResponseRepo) Create(resp *models.ProjectResponse) error {
	return r.db.Create(resp).Error
}

func (r *DBResponseRepo) FindByID(id uint) (models.ProjectResponse, error) {
	var resp models.ProjectResponse
	if err := r.db.Preload("Freelancer").First(&resp, id).Error; err != nil {
		return models.ProjectResponse{}, err
	}
	return resp, nil
}

func (r *DBResponseRepo) ListByProject(projectID uint) ([]models.ProjectResponse, error) {
	var responses []models.ProjectResponse
	err := r.db.Preload("Freelancer").Where("project_id = ?", projectID).Order("created_at asc").Find(&responses).Error
	return responses, err
}

func (r *DBResponseRepo) HasResponded(projectID, freelancerID uint) (bool, error) {
	var resp models.ProjectResponse
	err := r.db.Where("project_id = ? AND freelancer_id = ?", projectID, freelancerID).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DBResponseRepo) RejectSiblings(projectID, acceptedID uint) error {
	return r.db.Model(&models.ProjectResponse{}).
		Where("project_id = ? AND id <> ?", projectID, acceptedID).
		Update("status", models.ResponseStatusRejected).Error
}

func (r *DBResponseRepo) Save(resp *models.ProjectResponse) error {
	return r.db.Save(resp).Error
}

func (r *DBResponseRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectResponse{}).Error
}
