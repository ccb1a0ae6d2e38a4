package service

import (
	"github.com/picsure/backend/internal/config"
	"github.com/picsure/backend/internal/repository"
)

type Services struct {
	Token  *TokenService
	Auth   *AuthService
	User   *UserService
	Friend *FriendService
	Access *AccessService
	Album  *AlbumService
	Photo  *PhotoService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, notifier Notifier) *Services {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	tokens := NewTokenService(cfg)
	access := NewAccessService(repos.Permission, repos.Friend)

	return &Services{
		Token:  tokens,
		Auth:   NewAuthService(repos.User, repos.UserSettings, tokens),
		User:   NewUserService(repos.User, repos.UserSettings),
		Friend: NewFriendService(repos.Friend, repos.User, notifier),
		Access: access,
		Album:  NewAlbumService(repos.Album, repos.Permission, access, notifier),
		Photo:  NewPhotoService(repos.Photo, repos.Album, access),
	}
}
