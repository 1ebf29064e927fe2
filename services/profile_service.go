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
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileService struct {
	repos      *repositories.Repos
	dispatcher *NotificationDispatcher
	pub        events.Publisher
}

func (s *ProfileService) Create(userID uint, input dto.CreateProfileInput) (models.Profile, error) {
	_, err := s.repos.Profile.FindByUserID(userID)
	if err == nil {
		return models.Profile{}, ErrProfileExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, err
	}

	profile := models.Profile{
		UserID:      userID,
		FullName:    input.FullName,
		Title:       input.Title,
		Description: input.Description,
		Skills:      input.Skills,
		HourlyRate:  input.HourlyRate,
		Experience:  input.Experience,
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Profile.Create(&profile); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrProfileExists
			}
			return err
		}
		created, err = s.dispatcher.Dispatch(tx, events.ProfileCreated{UserID: userID})
		return err
	})
	if err != nil {
		return models.Profile{}, err
	}

	signal(s.pub, created)
	return profile, nil
}

func (s *ProfileService) FindByUserID(userID uint) (models.Profile, error) {
	profile, err := s.repos.Profile.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) Update(userID uint, input dto.UpdateProfileInput) (models.Profile, error) {
	profile, err := s.repos.Profile.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, err
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Title != nil {
		profile.Title = *input.Title
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}
	if input.Skills != nil {
		profile.Skills = *input.Skills
	}
	if input.HourlyRate != nil {
		profile.HourlyRate = *input.HourlyRate
	}
	if input.Experience != nil {
		profile.Experience = *input.Experience
	}

	if err := s.repos.Profile.Save(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
