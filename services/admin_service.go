package services

import (
	"errors"

	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"gorm.io/gorm"
)

var (
	ErrCannotBanModerator    = errors.New("moderators cannot be banned")
	ErrCannotDeleteModerator = errors.New("moderators cannot be deleted")
)

type AdminService struct {
	repos      *repositories.Repos
	dispatcher *NotificationDispatcher
	pub        events.Publisher
}

func (s *AdminService) Stats() (models.AdminStats, error) {
	return s.repos.Admin.Stats()
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.repos.User.ListAll()
}

func (s *AdminService) BanUser(id uint) (models.User, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	if user.IsModerator() {
		return models.User{}, ErrCannotBanModerator
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		user.IsActive = false
		if err := tx.User.Save(&user); err != nil {
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.UserBanned{User: user})
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	signal(s.pub, created)
	return user, nil
}

func (s *AdminService) UnbanUser(id uint) (models.User, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	user.IsActive = true
	if err := s.repos.User.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes the user together with their profile, notifications
// and favorites.
func (s *AdminService) DeleteUser(id uint) error {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.IsModerator() {
		return ErrCannotDeleteModerator
	}

	return s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Profile.DeleteByUserID(id); err != nil {
			return err
		}
		if err := tx.Notification.DeleteByUser(id); err != nil {
			return err
		}
		if err := tx.Favorite.DeleteByUser(id); err != nil {
			return err
		}
		return tx.User.Delete(id)
	})
}

// DeleteProject removes the project with its responses, reviews and
// favorites.
func (s *AdminService) DeleteProject(id uint) error {
	if _, err := s.repos.Project.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	return s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Response.DeleteByProject(id); err != nil {
			return err
		}
		if err := tx.Review.DeleteByProject(id); err != nil {
			return err
		}
		if err := tx.Favorite.DeleteByProject(id); err != nil {
			return err
		}
		return tx.Project.Delete(id)
	})
}

// ToggleProjectVisibility flips a project between open and hidden. Projects
// in any other state cannot be hidden.
func (s *AdminService) ToggleProjectVisibility(id uint) (models.Project, error) {
	project, err := s.repos.Project.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}

	switch project.Status {
	case models.ProjectStatusOpen:
		project.Status = models.ProjectStatusHidden
	case models.ProjectStatusHidden:
		project.Status = models.ProjectStatusOpen
	default:
		return models.Project{}, ErrCannotHide
	}

	if err := s.repos.Project.Save(&project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}
