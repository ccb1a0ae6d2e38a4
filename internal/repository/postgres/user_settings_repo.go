package postgres

import (
	"context"

	"github.com/picsure/backend/internal/domain"
	"gorm.io/gorm"
)

type userSettingsRepository struct {
	db *gorm.DB
}

func NewUserSettingsRepository(db *gorm.DB) *userSettingsRepository {
	return &userSettingsRepository{db: db}
}

func (r *userSettingsRepository) Create(ctx context.Context, settings *domain.UserSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *userSettingsRepository) GetByUserID(ctx context.Context, userID uint) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *userSettingsRepository) Update(ctx context.Context, settings *domain.UserSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
