package service

import (
	"context"
	"errors"

	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/repository"
	"gorm.io/gorm"
)

// FriendService owns the friend-request lifecycle and the symmetric
// friendship relation. Per unordered pair the states are none,
// pending, friends and declined; accepted and declined are terminal,
// and re-friending after a decline takes a brand-new request.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
	notifier   Notifier
}

func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository, notifier Notifier) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// SendRequest creates a pending request from sender to receiver. The
// pending/friends checks run first, but the second of two concurrent
// senders is caught by the storage-level uniqueness on the pair, not
// by the lookups.
func (s *FriendService) SendRequest(ctx context.Context, senderID, receiverID uint) (*domain.FriendRequest, error) {
	if senderID == receiverID {
		return nil, domain.ErrSelfRequest
	}

	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	friends, err := s.friendRepo.EdgeExists(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, domain.ErrAlreadyFriends
	}

	if _, err := s.friendRepo.GetPendingBetween(ctx, senderID, receiverID); err == nil {
		return nil, domain.ErrAlreadyRequested
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := &domain.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	if err := s.friendRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.notifier.Notify(receiverID, EventFriendRequest, request)

	return request, nil
}

// AcceptRequest accepts a pending request addressed to receiverID.
// The status flip and both friendship rows are written in one
// transaction; a partially linked friendship cannot exist.
func (s *FriendService) AcceptRequest(ctx context.Context, requestID, receiverID uint) error {
	request, err := s.friendRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	if request.ReceiverID != receiverID || request.Status != domain.FriendRequestPending {
		return domain.ErrRequestNotFound
	}

	if err := s.friendRepo.AcceptAndLink(ctx, request); err != nil {
		return err
	}

	s.notifier.Notify(request.SenderID, EventFriendAccepted, map[string]uint{"userId": receiverID})

	return nil
}

func (s *FriendService) DeclineRequest(ctx context.Context, requestID, receiverID uint) error {
	declined, err := s.friendRepo.MarkDeclined(ctx, requestID, receiverID)
	if err != nil {
		return err
	}
	if !declined {
		return domain.ErrRequestNotFound
	}
	return nil
}

// RemoveFriend deletes both directed rows atomically. Removing a
// friendship that does not exist is a no-op, not an error.
func (s *FriendService) RemoveFriend(ctx context.Context, userA, userB uint) error {
	return s.friendRepo.DeleteEdges(ctx, userA, userB)
}

func (s *FriendService) AreFriends(ctx context.Context, userA, userB uint) (bool, error) {
	return s.friendRepo.EdgeExists(ctx, userA, userB)
}

func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]*domain.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

func (s *FriendService) ListPendingRequests(ctx context.Context, userID uint) ([]*domain.FriendRequest, error) {
	return s.friendRepo.GetPendingForReceiver(ctx, userID)
}
