package postgres

import (
	"context"

	"github.com/picsure/backend/internal/domain"
	"gorm.io/gorm"
)

type albumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *albumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *albumRepository) GetByID(ctx context.Context, id uint) (*domain.Album, error) {
	var album domain.Album
	err := r.db.WithContext(ctx).Preload("Owner").First(&album, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*domain.Album, error) {
	var albums []*domain.Album
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepository) GetAccessible(ctx context.Context, userID uint) ([]*domain.Album, error) {
	var albums []*domain.Album
	err := r.db.WithContext(ctx).
		Distinct("albums.*").
		Joins("LEFT JOIN album_permissions ON album_permissions.album_id = albums.id").
		Where("albums.owner_id = ? OR album_permissions.user_id = ?", userID, userID).
		Order("albums.created_at DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepository) Update(ctx context.Context, album *domain.Album) error {
	return r.db.WithContext(ctx).Save(album).Error
}

func (r *albumRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Photo{}, "album_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.AlbumPermission{}, "album_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Album{}, "id = ?", id).Error
	})
}
