package domain

import "time"

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestDeclined FriendRequestStatus = "declined"
)

// FriendRequest carries the pair in two forms: Sender/Receiver for
// direction, and PairLow/PairHigh (min,max of the two IDs) so a partial
// unique index can reject a second pending request between the same
// pair regardless of who sent it.
type FriendRequest struct {
	ID         uint                `json:"id" gorm:"primaryKey"`
	SenderID   uint                `json:"senderId" gorm:"not null;index"`
	ReceiverID uint                `json:"receiverId" gorm:"not null;index"`
	PairLow    uint                `json:"-" gorm:"not null;uniqueIndex:idx_friend_requests_pending_pair,where:status = 'pending'"`
	PairHigh   uint                `json:"-" gorm:"not null;uniqueIndex:idx_friend_requests_pending_pair,where:status = 'pending'"`
	Status     FriendRequestStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt  time.Time           `json:"createdAt"`

	Sender *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
}

// NormalizePair fills PairLow/PairHigh from the sender and receiver.
func (r *FriendRequest) NormalizePair() {
	r.PairLow, r.PairHigh = r.SenderID, r.ReceiverID
	if r.PairLow > r.PairHigh {
		r.PairLow, r.PairHigh = r.PairHigh, r.PairLow
	}
}

// Friendship is one direction of a symmetric edge. Both directed rows
// are written and deleted together; a lone row is a bug.
type Friendship struct {
	UserID    uint      `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	FriendID  uint      `json:"friendId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Friendship) TableName() string {
	return "friends"
}
