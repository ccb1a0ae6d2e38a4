package service

import (
	"context"
	"errors"

	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/repository"
	"gorm.io/gorm"
)

// AccessService is the single authority on what a user may do to an
// album. It only reads; all mutation goes through the permission and
// friend repositories.
type AccessService struct {
	permRepo   repository.PermissionRepository
	friendRepo repository.FriendRepository
}

func NewAccessService(permRepo repository.PermissionRepository, friendRepo repository.FriendRepository) *AccessService {
	return &AccessService{
		permRepo:   permRepo,
		friendRepo: friendRepo,
	}
}

// Resolve computes the effective capability set for (user, album).
// Ownership is absolute and short-circuits the grant lookup. For
// non-owners the flags come from the grant row, and the row's mere
// existence makes the album visible; visibility is not a separate
// flag. No row means no access at all.
func (s *AccessService) Resolve(ctx context.Context, userID uint, album *domain.Album) (domain.Capabilities, error) {
	if album.OwnerID == userID {
		return domain.OwnerCapabilities(), nil
	}

	perm, err := s.permRepo.GetByAlbumAndUser(ctx, album.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Capabilities{}, nil
		}
		return domain.Capabilities{}, err
	}

	return domain.Capabilities{
		View:         true,
		AddPhotos:    perm.CanAddPhotos,
		DeletePhotos: perm.CanDeletePhotos,
	}, nil
}

// CanGrant reports whether ownerID may share the album with the target
// user: only owners share, and only with friends. Callers must pass
// this check before touching the permission store, which has no notion
// of friendship.
func (s *AccessService) CanGrant(ctx context.Context, ownerID uint, album *domain.Album, targetUserID uint) error {
	if album.OwnerID != ownerID {
		return domain.ErrNotOwner
	}

	friends, err := s.friendRepo.EdgeExists(ctx, ownerID, targetUserID)
	if err != nil {
		return err
	}
	if !friends {
		return domain.ErrNotFriends
	}

	return nil
}
