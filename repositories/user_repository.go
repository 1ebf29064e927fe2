package repositories

import (
	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(user *models.User) error
	FindByID(id uint) (models.User, error)
	FindByEmail(email string) (models.User, error)
	ListAll() ([]models.User, error)
	ListModerators() ([]models.User, error)
	Save(user *models.User) error
	Delete(id uint) error
}

type DBUserRepo struct {
	db *gorm.DB
}

func (r *DBUserRepo) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *DBUserRepo) FindByID(id uint) (models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) FindByEmail(email string) (models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListModerators() ([]models.User, error) {
	var moderators []models.User
	err := r.db.Where("role = ?", models.UserRoleModerator).Find(&moderators).Error
	return moderators, err
}

func (r *DBUserRepo) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *DBUserRepo) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
