package service

import (
	"context"
	"errors"

	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.UserSettingsRepository
}

func NewUserService(userRepo repository.UserRepository, settingsRepo repository.UserSettingsRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

type UpdateProfileInput struct {
	Username       *string
	Email          *string
	Phone          *string
	ProfilePicture *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = input.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}

func (s *UserService) GetSettings(ctx context.Context, userID uint) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Accounts created before settings existed get defaults on
			// first read.
			settings = domain.DefaultUserSettings(userID)
			if err := s.settingsRepo.Create(ctx, settings); err != nil {
				return nil, err
			}
			return settings, nil
		}
		return nil, err
	}
	return settings, nil
}

type UpdateSettingsInput struct {
	ReceiveNotifications      *bool
	ReceiveFriendRequests     *bool
	ReceiveEmailNotifications *bool
	ProfileVisibility         *string
	Theme                     *string
}

func (s *UserService) UpdateSettings(ctx context.Context, userID uint, input UpdateSettingsInput) (*domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.ReceiveNotifications != nil {
		settings.ReceiveNotifications = *input.ReceiveNotifications
	}
	if input.ReceiveFriendRequests != nil {
		settings.ReceiveFriendRequests = *input.ReceiveFriendRequests
	}
	if input.ReceiveEmailNotifications != nil {
		settings.ReceiveEmailNotifications = *input.ReceiveEmailNotifications
	}
	if input.ProfileVisibility != nil {
		settings.ProfileVisibility = *input.ProfileVisibility
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
