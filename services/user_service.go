package services

import (
	"errors"
	"time"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/middleware"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountBlocked      = errors.New("account blocked")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	repos      *repositories.Repos
	dispatcher *NotificationDispatcher
	pub        events.Publisher
}

func (s *UserService) Register(input dto.RegisterInput) (models.User, error) {
	_, err := s.repos.User.FindByEmail(input.Email)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.UserRole(input.Role),
		IsActive: true,
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.User.Create(&user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUsernameTaken
			}
			return err
		}
		created, err = s.dispatcher.Dispatch(tx, events.UserRegistered{User: user})
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	signal(s.pub, created)
	return user, nil
}

func (s *UserService) Login(email, password string) (models.User, string, error) {
	user, err := s.repos.User.FindByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, "", ErrAccountBlocked
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, string(user.Role), 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *UserService) FindByID(id uint) (models.User, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
