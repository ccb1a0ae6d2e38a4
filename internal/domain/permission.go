package domain

import "time"

// AlbumPermission is a non-owner capability grant for one
// (album, user) pair. At most one row exists per pair; regranting
// overwrites the flags in place.
type AlbumPermission struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	AlbumID         uint      `json:"albumId" gorm:"not null;uniqueIndex:idx_album_permissions_album_user"`
	UserID          uint      `json:"userId" gorm:"not null;uniqueIndex:idx_album_permissions_album_user"`
	CanAddPhotos    bool      `json:"canAddPhotos" gorm:"not null;default:false"`
	CanDeletePhotos bool      `json:"canDeletePhotos" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Capabilities is the resolved answer to "what may this user do to
// this album". View is true whenever a grant row exists at all; the
// grant itself is the visibility signal.
type Capabilities struct {
	View         bool `json:"view"`
	AddPhotos    bool `json:"addPhotos"`
	DeletePhotos bool `json:"deletePhotos"`
}

// OwnerCapabilities is what album ownership resolves to, regardless of
// any grant rows.
func OwnerCapabilities() Capabilities {
	return Capabilities{View: true, AddPhotos: true, DeletePhotos: true}
}
