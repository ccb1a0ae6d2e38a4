package service_test

import (
	"context"
	"testing"

	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/repository/postgres"
	"github.com/picsure/backend/internal/service"
	"github.com/picsure/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendService_SendRequest(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	friendService := service.NewFriendService(repos.Friend, repos.User, service.NopNotifier{})
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(sender, receiver *domain.User)
		wantErr error
	}{
		{
			name: "successful request",
		},
		{
			name: "already friends",
			setup: func(sender, receiver *domain.User) {
				testutil.MakeFriends(t, testDB.DB, sender, receiver)
			},
			wantErr: domain.ErrAlreadyFriends,
		},
		{
			name: "pending request same direction",
			setup: func(sender, receiver *domain.User) {
				_, err := friendService.SendRequest(ctx, sender.ID, receiver.ID)
				require.NoError(t, err)
			},
			wantErr: domain.ErrAlreadyRequested,
		},
		{
			name: "pending request opposite direction",
			setup: func(sender, receiver *domain.User) {
				_, err := friendService.SendRequest(ctx, receiver.ID, sender.ID)
				require.NoError(t, err)
			},
			wantErr: domain.ErrAlreadyRequested,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			sender, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
			receiver, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

			if tt.setup != nil {
				tt.setup(sender, receiver)
			}

			request, err := friendService.SendRequest(ctx, sender.ID, receiver.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, request.ID)
			assert.Equal(t, domain.FriendRequestPending, request.Status)
		})
	}
}

func TestFriendService_SendRequest_SelfAndUnknown(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	friendService := service.NewFriendService(repos.Friend, repos.User, service.NopNotifier{})
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := friendService.SendRequest(ctx, user.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrSelfRequest)

	_, err = friendService.SendRequest(ctx, user.ID, user.ID+12345)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestFriendService_AcceptRequest(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	friendService := service.NewFriendService(repos.Friend, repos.User, service.NopNotifier{})
	ctx := context.Background()

	t.Run("accept creates a symmetric friendship", func(t *testing.T) {
		testDB.Truncate(t)

		sender, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		receiver, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		request, err := friendService.SendRequest(ctx, sender.ID, receiver.ID)
		require.NoError(t, err)

		require.NoError(t, friendService.AcceptRequest(ctx, request.ID, receiver.ID))

		forward, err := friendService.AreFriends(ctx, sender.ID, receiver.ID)
		require.NoError(t, err)
		backward, err := friendService.AreFriends(ctx, receiver.ID, sender.ID)
		require.NoError(t, err)
		assert.True(t, forward)
		assert.True(t, backward)

		// Exactly two directed rows, one per direction.
		var count int64
		require.NoError(t, testDB.DB.Model(&domain.Friendship{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				sender.ID, receiver.ID, receiver.ID, sender.ID).
			Count(&count).Error)
		assert.EqualValues(t, 2, count)
	})

	t.Run("only the receiver can accept", func(t *testing.T) {
		testDB.Truncate(t)

		sender, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		receiver, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		request, err := friendService.SendRequest(ctx, sender.ID, receiver.ID)
		require.NoError(t, err)

		err = friendService.AcceptRequest(ctx, request.ID, sender.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)

		// The request is untouched and still acceptable.
		require.NoError(t, friendService.AcceptRequest(ctx, request.ID, receiver.ID))
	})

	t.Run("accepting twice fails", func(t *testing.T) {
		testDB.Truncate(t)

		sender, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		receiver, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		request, err := friendService.SendRequest(ctx, sender.ID, receiver.ID)
		require.NoError(t, err)

		require.NoError(t, friendService.AcceptRequest(ctx, request.ID, receiver.ID))
		err = friendService.AcceptRequest(ctx, request.ID, receiver.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("unknown request", func(t *testing.T) {
		testDB.Truncate(t)

		receiver, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		err := friendService.AcceptRequest(ctx, 999999, receiver.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}

func TestFriendService_DeclineRequest(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	friendService := service.NewFriendService(repos.Friend, repos.User, service.NopNotifier{})
	ctx := context.Background()

	sender, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	receiver, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	request, err := friendService.SendRequest(ctx, sender.ID, receiver.ID)
	require.NoError(t, err)

	// Wrong receiver is a no-op.
	err = friendService.DeclineRequest(ctx, request.ID, sender.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	require.NoError(t, friendService.DeclineRequest(ctx, request.ID, receiver.ID))

	// Declined is terminal: the same request cannot be accepted.
	err = friendService.AcceptRequest(ctx, request.ID, receiver.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	friends, err := friendService.AreFriends(ctx, sender.ID, receiver.ID)
	require.NoError(t, err)
	assert.False(t, friends)

	// Re-friending after a decline takes a brand-new request.
	again, err := friendService.SendRequest(ctx, sender.ID, receiver.ID)
	require.NoError(t, err)
	assert.NotEqual(t, request.ID, again.ID)
}

func TestFriendService_RemoveFriend(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	friendService := service.NewFriendService(repos.Friend, repos.User, service.NopNotifier{})
	ctx := context.Background()

	userA, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	userB, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.MakeFriends(t, testDB.DB, userA, userB)

	pairCount := func() int64 {
		var count int64
		require.NoError(t, testDB.DB.Model(&domain.Friendship{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userA.ID, userB.ID, userB.ID, userA.ID).
			Count(&count).Error)
		return count
	}

	assert.EqualValues(t, 2, pairCount())

	require.NoError(t, friendService.RemoveFriend(ctx, userA.ID, userB.ID))

	friends, err := friendService.AreFriends(ctx, userA.ID, userB.ID)
	require.NoError(t, err)
	assert.False(t, friends)
	assert.EqualValues(t, 0, pairCount())

	// Removal is idempotent.
	require.NoError(t, friendService.RemoveFriend(ctx, userA.ID, userB.ID))
}

func TestFriendService_Listings(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	friendService := service.NewFriendService(repos.Friend, repos.User, service.NopNotifier{})
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	carol, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.MakeFriends(t, testDB.DB, alice, bob)

	_, err := friendService.SendRequest(ctx, carol.ID, alice.ID)
	require.NoError(t, err)

	friends, err := friendService.ListFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	requests, err := friendService.ListPendingRequests(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, carol.ID, requests[0].SenderID)
	require.NotNil(t, requests[0].Sender)
	assert.Equal(t, carol.Username, requests[0].Sender.Username)

	// Carol sees no pending requests of her own.
	requests, err = friendService.ListPendingRequests(ctx, carol.ID)
	require.NoError(t, err)
	assert.Empty(t, requests)
}
