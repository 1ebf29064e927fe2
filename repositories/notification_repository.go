package repositories

import (
	"time"

	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(notification *models.Notification) error
	FindByID(id uint) (models.Notification, error)
	ListByUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
	Delete(id uint) error
	UnreadCount(userID uint) (int64, error)
	CountSince(userID uint, since time.Time) (int64, error)
	DeleteByUser(userID uint) error
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func (r *DBNotificationRepo) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *DBNotificationRepo) FindByID(id uint) (models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (r *DBNotificationRepo) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *DBNotificationRepo) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

func (r *DBNotificationRepo) Delete(id uint) error {
	return r.db.Delete(&models.Notification{}, id).Error
}

func (r *DBNotificationRepo) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) CountSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND created_at > ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Notification{}).Error
}
