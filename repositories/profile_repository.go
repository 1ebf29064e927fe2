package repositories

import (
	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type ProfileRepo interface {
	Create(profile *models.Profile) error
	FindByUserID(userID uint) (models.Profile, error)
	Save(profile *models.Profile) error
	DeleteByUserID(userID uint) error
}

type DBProfileRepo struct {
	db *gorm.DB
}

func (r *DBProfileRepo) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *DBProfileRepo) FindByUserID(userID uint) (models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (r *DBProfileRepo) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *DBProfileRepo) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Profile{}).Error
}
