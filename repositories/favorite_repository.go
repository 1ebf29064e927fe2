package repositories

import (
	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type FavoriteRepo interface {
	Create(favorite *models.Favorite) error
	Delete(userID, projectID uint) error
	ListByUser(userID uint) ([]models.Favorite, error)
	DeleteByProject(projectID uint) error
	DeleteByUser(userID uint) error
}

type DBFavoriteRepo struct {
	db *gorm.DB
}

func (r *DBFavoriteRepo) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *DBFavoriteRepo) Delete(userID, projectID uint) error {
	return r.db.Where("user_id = ? AND project_id = ?", userID, projectID).Delete(&models.Favorite{}).Error
}

func (r *DBFavoriteRepo) ListByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Project").Preload("Project.Client").
		Where("user_id = ?", userID).Order("created_at desc").Find(&favorites).Error
	return favorites, err
}

func (r *DBFavoriteRepo) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Favorite{}).Error
}

func (r *DBFavoriteRepo) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error
}
