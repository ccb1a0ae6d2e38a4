package postgres

import (
	"context"
	"errors"

	"github.com/picsure/backend/internal/domain"
	"gorm.io/gorm"
)

type permissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *permissionRepository {
	return &permissionRepository{db: db}
}

// Upsert writes the grant for (AlbumID, UserID), overwriting the flags
// of an existing row instead of adding a second one. The lookup-then-
// insert can race another granter; the unique index on the pair makes
// the loser's insert fail, and it retries as an update.
func (r *permissionRepository) Upsert(ctx context.Context, perm *domain.AlbumPermission) error {
	err := r.upsertOnce(ctx, perm)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.upsertOnce(ctx, perm)
	}
	return err
}

func (r *permissionRepository) upsertOnce(ctx context.Context, perm *domain.AlbumPermission) error {
	var existing domain.AlbumPermission
	err := r.db.WithContext(ctx).
		Where("album_id = ? AND user_id = ?", perm.AlbumID, perm.UserID).
		First(&existing).Error

	if err == nil {
		perm.ID = existing.ID
		perm.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Model(&domain.AlbumPermission{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"can_add_photos":    perm.CanAddPhotos,
				"can_delete_photos": perm.CanDeletePhotos,
			}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(perm).Error
}

func (r *permissionRepository) GetByID(ctx context.Context, id uint) (*domain.AlbumPermission, error) {
	var perm domain.AlbumPermission
	err := r.db.WithContext(ctx).First(&perm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *permissionRepository) GetByAlbumAndUser(ctx context.Context, albumID, userID uint) (*domain.AlbumPermission, error) {
	var perm domain.AlbumPermission
	err := r.db.WithContext(ctx).
		Where("album_id = ? AND user_id = ?", albumID, userID).
		First(&perm).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *permissionRepository) GetByAlbumID(ctx context.Context, albumID uint) ([]*domain.AlbumPermission, error) {
	var perms []*domain.AlbumPermission
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("album_id = ?", albumID).
		Order("created_at ASC").
		Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *permissionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.AlbumPermission{}, "id = ?", id).Error
}
