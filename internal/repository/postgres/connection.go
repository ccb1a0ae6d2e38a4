package postgres

import (
	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surfaces unique-index violations as gorm.ErrDuplicatedKey so
		// repositories can resolve concurrent writers.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserSettings{},
		&domain.Album{},
		&domain.Photo{},
		&domain.FriendRequest{},
		&domain.Friendship{},
		&domain.AlbumPermission{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:         NewUserRepository(db),
		UserSettings: NewUserSettingsRepository(db),
		Album:        NewAlbumRepository(db),
		Photo:        NewPhotoRepository(db),
		Friend:       NewFriendRepository(db),
		Permission:   NewPermissionRepository(db),
	}
}
