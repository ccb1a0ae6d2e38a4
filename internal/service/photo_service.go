package service

import (
	"context"
	"errors"

	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PhotoService struct {
	photoRepo repository.PhotoRepository
	albumRepo repository.AlbumRepository
	access    *AccessService
}

func NewPhotoService(photoRepo repository.PhotoRepository, albumRepo repository.AlbumRepository, access *AccessService) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		albumRepo: albumRepo,
		access:    access,
	}
}

type AddPhotoInput struct {
	PhotoURL string
	Metadata datatypes.JSON
}

func (s *PhotoService) Add(ctx context.Context, userID, albumID uint, input AddPhotoInput) (*domain.Photo, error) {
	album, err := s.getAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	caps, err := s.access.Resolve(ctx, userID, album)
	if err != nil {
		return nil, err
	}
	if !caps.AddPhotos {
		return nil, domain.ErrNotOwner
	}

	photo := &domain.Photo{
		AlbumID:    albumID,
		PhotoURL:   input.PhotoURL,
		Metadata:   input.Metadata,
		UploadedBy: userID,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *PhotoService) ListByAlbum(ctx context.Context, userID, albumID uint) ([]*domain.Photo, error) {
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

	return s.photoRepo.GetByAlbumID(ctx, albumID)
}

// Delete removes a photo record. Allowed for the album owner, the
// uploader of the photo, or a user holding the delete-photos
// capability.
func (s *PhotoService) Delete(ctx context.Context, userID, photoID uint) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPhotoNotFound
		}
		return err
	}

	album, err := s.getAlbum(ctx, photo.AlbumID)
	if err != nil {
		return err
	}

	if photo.UploadedBy != userID {
		caps, err := s.access.Resolve(ctx, userID, album)
		if err != nil {
			return err
		}
		if !caps.DeletePhotos {
			return domain.ErrNotOwner
		}
	}

	return s.photoRepo.Delete(ctx, photoID)
}

func (s *PhotoService) getAlbum(ctx context.Context, albumID uint) (*domain.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return album, nil
}
