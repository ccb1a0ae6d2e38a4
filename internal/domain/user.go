package domain

import "time"

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"not null"`
	Phone          *string   `json:"phone,omitempty"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserSettings holds per-user preferences, created with defaults at
// registration time.
type UserSettings struct {
	UserID                    uint      `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	ReceiveNotifications      bool      `json:"receiveNotifications" gorm:"not null;default:true"`
	ReceiveFriendRequests     bool      `json:"receiveFriendRequests" gorm:"not null;default:true"`
	ReceiveEmailNotifications bool      `json:"receiveEmailNotifications" gorm:"not null;default:false"`
	ProfileVisibility         string    `json:"profileVisibility" gorm:"type:varchar(20);not null;default:'friends'"`
	Theme                     string    `json:"theme" gorm:"type:varchar(20);not null;default:'light'"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

func DefaultUserSettings(userID uint) *UserSettings {
	return &UserSettings{
		UserID:                    userID,
		ReceiveNotifications:      true,
		ReceiveFriendRequests:     true,
		ReceiveEmailNotifications: false,
		ProfileVisibility:         "friends",
		Theme:                     "light",
	}
}
