package repository

import (
	"context"

	"github.com/picsure/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

type UserSettingsRepository interface {
	Create(ctx context.Context, settings *domain.UserSettings) error
	GetByUserID(ctx context.Context, userID uint) (*domain.UserSettings, error)
	Update(ctx context.Context, settings *domain.UserSettings) error
}

type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	GetByID(ctx context.Context, id uint) (*domain.Album, error)
	GetByOwner(ctx context.Context, ownerID uint) ([]*domain.Album, error)
	// GetAccessible returns albums the user owns plus albums a
	// permission grant makes visible to them.
	GetAccessible(ctx context.Context, userID uint) ([]*domain.Album, error)
	Update(ctx context.Context, album *domain.Album) error
	Delete(ctx context.Context, id uint) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	GetByID(ctx context.Context, id uint) (*domain.Photo, error)
	GetByAlbumID(ctx context.Context, albumID uint) ([]*domain.Photo, error)
	Delete(ctx context.Context, id uint) error
}

type FriendRepository interface {
	CreateRequest(ctx context.Context, request *domain.FriendRequest) error
	GetRequestByID(ctx context.Context, id uint) (*domain.FriendRequest, error)
	// GetPendingBetween looks for a pending request in either
	// direction between the two users.
	GetPendingBetween(ctx context.Context, userA, userB uint) (*domain.FriendRequest, error)
	GetPendingForReceiver(ctx context.Context, receiverID uint) ([]*domain.FriendRequest, error)
	// AcceptAndLink marks the request accepted and inserts both
	// directed friendship rows in a single transaction.
	AcceptAndLink(ctx context.Context, request *domain.FriendRequest) error
	// MarkDeclined flips a pending request to declined, guarded by the
	// receiver. Returns false when no matching pending row exists.
	MarkDeclined(ctx context.Context, requestID, receiverID uint) (bool, error)
	// DeleteEdges removes both directed rows atomically; deleting an
	// absent edge is not an error.
	DeleteEdges(ctx context.Context, userA, userB uint) error
	EdgeExists(ctx context.Context, userA, userB uint) (bool, error)
	GetFriends(ctx context.Context, userID uint) ([]*domain.User, error)
}

type PermissionRepository interface {
	// Upsert creates the grant for (AlbumID, UserID) or overwrites the
	// capability flags of the existing row, filling in its ID.
	Upsert(ctx context.Context, perm *domain.AlbumPermission) error
	GetByID(ctx context.Context, id uint) (*domain.AlbumPermission, error)
	GetByAlbumAndUser(ctx context.Context, albumID, userID uint) (*domain.AlbumPermission, error)
	GetByAlbumID(ctx context.Context, albumID uint) ([]*domain.AlbumPermission, error)
	Delete(ctx context.Context, id uint) error
}

type Repositories struct {
	User         UserRepository
	UserSettings UserSettingsRepository
	Album        AlbumRepository
	Photo        PhotoRepository
	Friend       FriendRepository
	Permission   PermissionRepository
}
