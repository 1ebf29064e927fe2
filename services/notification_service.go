package services

import (
	"errors"

	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	repos *repositories.Repos
}

func (s *NotificationService) List(actorID uint) ([]models.Notification, error) {
	return s.repos.Notification.ListByUser(actorID)
}

// MarkRead is idempotent: marking an already-read notification changes
// nothing.
func (s *NotificationService) MarkRead(actorID, id uint) error {
	notification, err := s.repos.Notification.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != actorID {
		return ErrAccessDenied
	}
	return s.repos.Notification.MarkRead(id)
}

func (s *NotificationService) MarkAllRead(actorID uint) error {
	return s.repos.Notification.MarkAllRead(actorID)
}

func (s *NotificationService) Delete(actorID, id uint) error {
	notification, err := s.repos.Notification.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != actorID {
		return ErrAccessDenied
	}
	return s.repos.Notification.Delete(id)
}

func (s *NotificationService) UnreadCount(actorID uint) (int64, error) {
	return s.repos.Notification.UnreadCount(actorID)
}
