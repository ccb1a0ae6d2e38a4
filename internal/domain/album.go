package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Album struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	OwnerID   uint      `json:"ownerId" gorm:"not null;index"`
	Thumbnail *string   `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// Photo is a metadata record only; the image itself lives behind
// PhotoURL and is not managed by this service.
type Photo struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	AlbumID    uint           `json:"albumId" gorm:"not null;index"`
	PhotoURL   string         `json:"photoUrl" gorm:"not null"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
	UploadedBy uint           `json:"uploadedBy" gorm:"not null"`
	UploadedAt time.Time      `json:"uploadedAt" gorm:"autoCreateTime"`
}
