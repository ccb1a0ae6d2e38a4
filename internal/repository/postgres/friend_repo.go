package postgres

import (
	"context"
	"errors"

	"github.com/picsure/backend/internal/domain"
	"gorm.io/gorm"
)

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *friendRepository {
	return &friendRepository{db: db}
}

// CreateRequest inserts a new pending request. A partial unique index
// on the normalized pair (while status='pending') makes the second of
// two concurrent senders lose, surfaced as ErrAlreadyRequested.
func (r *friendRepository) CreateRequest(ctx context.Context, request *domain.FriendRequest) error {
	request.Status = domain.FriendRequestPending
	request.NormalizePair()

	err := r.db.WithContext(ctx).Create(request).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyRequested
	}
	return err
}

func (r *friendRepository) GetRequestByID(ctx context.Context, id uint) (*domain.FriendRequest, error) {
	var request domain.FriendRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRepository) GetPendingBetween(ctx context.Context, userA, userB uint) (*domain.FriendRequest, error) {
	low, high := userA, userB
	if low > high {
		low, high = high, low
	}

	var request domain.FriendRequest
	err := r.db.WithContext(ctx).
		Where("pair_low = ? AND pair_high = ? AND status = ?", low, high, domain.FriendRequestPending).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRepository) GetPendingForReceiver(ctx context.Context, receiverID uint) ([]*domain.FriendRequest, error) {
	var requests []*domain.FriendRequest
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ? AND status = ?", receiverID, domain.FriendRequestPending).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptAndLink performs the three writes of an acceptance as one
// transaction: status flip plus both directed friendship rows. The
// status update is guarded on pending so a request cannot be accepted
// twice; if any write fails the request stays pending.
func (r *friendRepository) AcceptAndLink(ctx context.Context, request *domain.FriendRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.FriendRequest{}).
			Where("id = ? AND status = ?", request.ID, domain.FriendRequestPending).
			Update("status", domain.FriendRequestAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequestNotFound
		}

		edges := []domain.Friendship{
			{UserID: request.SenderID, FriendID: request.ReceiverID},
			{UserID: request.ReceiverID, FriendID: request.SenderID},
		}
		return tx.Create(&edges).Error
	})
}

func (r *friendRepository) MarkDeclined(ctx context.Context, requestID, receiverID uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.FriendRequest{}).
		Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, domain.FriendRequestPending).
		Update("status", domain.FriendRequestDeclined)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *friendRepository) DeleteEdges(ctx context.Context, userA, userB uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Friendship{}, "user_id = ? AND friend_id = ?", userA, userB).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Friendship{}, "user_id = ? AND friend_id = ?", userB, userA).Error
	})
}

func (r *friendRepository) EdgeExists(ctx context.Context, userA, userB uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userA, userB).
		Count(&count).Error
	return count > 0, err
}

// GetFriends returns the full neighbor set from a single-column filter;
// the dual-row representation makes a UNION unnecessary.
func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]*domain.User, error) {
	var friends []*domain.User
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Joins("JOIN friends ON friends.friend_id = users.id").
		Where("friends.user_id = ?", userID).
		Order("users.username ASC").
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}
