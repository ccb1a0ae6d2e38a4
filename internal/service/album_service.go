package service

import (
	"context"
	"errors"

	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/repository"
	"gorm.io/gorm"
)

type AlbumService struct {
	albumRepo repository.AlbumRepository
	permRepo  repository.PermissionRepository
	access    *AccessService
	notifier  Notifier
}

func NewAlbumService(albumRepo repository.AlbumRepository, permRepo repository.PermissionRepository, access *AccessService, notifier Notifier) *AlbumService {
	return &AlbumService{
		albumRepo: albumRepo,
		permRepo:  permRepo,
		access:    access,
		notifier:  notifier,
	}
}

type CreateAlbumInput struct {
	Name      string
	Thumbnail *string
}

func (s *AlbumService) Create(ctx context.Context, ownerID uint, input CreateAlbumInput) (*domain.Album, error) {
	album := &domain.Album{
		Name:      input.Name,
		OwnerID:   ownerID,
		Thumbnail: input.Thumbnail,
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// Get returns the album only if the caller may view it.
func (s *AlbumService) Get(ctx context.Context, userID, albumID uint) (*domain.Album, error) {
	album, err := s.getAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	caps, err := s.access.Resolve(ctx, userID, album)
	if err != nil {
		return nil, err
	}
	if !caps.View {
		return nil, domain.ErrNotOwner
	}

	return album, nil
}

// ListAccessible returns the caller's own albums plus albums shared
// with them through a grant.
func (s *AlbumService) ListAccessible(ctx context.Context, userID uint) ([]*domain.Album, error) {
	return s.albumRepo.GetAccessible(ctx, userID)
}

type UpdateAlbumInput struct {
	Name      *string
	Thumbnail *string
}

func (s *AlbumService) Update(ctx context.Context, userID, albumID uint, input UpdateAlbumInput) (*domain.Album, error) {
	album, err := s.getAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album.OwnerID != userID {
		return nil, domain.ErrNotOwner
	}

	if input.Name != nil {
		album.Name = *input.Name
	}
	if input.Thumbnail != nil {
		album.Thumbnail = input.Thumbnail
	}

	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *AlbumService) Delete(ctx context.Context, userID, albumID uint) error {
	album, err := s.getAlbum(ctx, albumID)
	if err != nil {
		return err
	}
	if album.OwnerID != userID {
		return domain.ErrNotOwner
	}
	return s.albumRepo.Delete(ctx, albumID)
}

type GrantInput struct {
	TargetUserID    uint
	CanAddPhotos    bool
	CanDeletePhotos bool
}

// Grant shares the album with a friend. The decision (owner + friends)
// is checked through AccessService before the upsert touches the
// store.
func (s *AlbumService) Grant(ctx context.Context, ownerID, albumID uint, input GrantInput) (*domain.AlbumPermission, error) {
	album, err := s.getAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	if err := s.access.CanGrant(ctx, ownerID, album, input.TargetUserID); err != nil {
		return nil, err
	}

	perm := &domain.AlbumPermission{
		AlbumID:         albumID,
		UserID:          input.TargetUserID,
		CanAddPhotos:    input.CanAddPhotos,
		CanDeletePhotos: input.CanDeletePhotos,
	}
	if err := s.permRepo.Upsert(ctx, perm); err != nil {
		return nil, err
	}

	s.notifier.Notify(input.TargetUserID, EventAlbumShared, album)

	return perm, nil
}

// ListGrants is the owner-facing permissions listing, with user
// display fields attached.
func (s *AlbumService) ListGrants(ctx context.Context, ownerID, albumID uint) ([]*domain.AlbumPermission, error) {
	album, err := s.getAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}
	return s.permRepo.GetByAlbumID(ctx, albumID)
}

func (s *AlbumService) RevokeGrant(ctx context.Context, ownerID, grantID uint) error {
	perm, err := s.permRepo.GetByID(ctx, grantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGrantNotFound
		}
		return err
	}

	album, err := s.getAlbum(ctx, perm.AlbumID)
	if err != nil {
		return err
	}
	if album.OwnerID != ownerID {
		return domain.ErrNotOwner
	}

	return s.permRepo.Delete(ctx, grantID)
}

func (s *AlbumService) getAlbum(ctx context.Context, albumID uint) (*domain.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return album, nil
}
