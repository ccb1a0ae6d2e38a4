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

func TestAccessService_Resolve(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	accessService := service.NewAccessService(repos.Permission, repos.Friend)
	ctx := context.Background()

	t.Run("owner holds every capability", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		album := testutil.NewAlbumBuilder().WithOwner(owner).Build(t, testDB.DB)

		caps, err := accessService.Resolve(ctx, owner.ID, album)
		require.NoError(t, err)
		assert.Equal(t, domain.Capabilities{View: true, AddPhotos: true, DeletePhotos: true}, caps)
	})

	t.Run("owner capabilities ignore grant rows", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		album := testutil.NewAlbumBuilder().WithOwner(owner).Build(t, testDB.DB)

		// A stray restrictive row for the owner must not win over ownership.
		require.NoError(t, repos.Permission.Upsert(ctx, &domain.AlbumPermission{
			AlbumID: album.ID,
			UserID:  owner.ID,
		}))

		caps, err := accessService.Resolve(ctx, owner.ID, album)
		require.NoError(t, err)
		assert.Equal(t, domain.OwnerCapabilities(), caps)
	})

	t.Run("no grant means no access", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		album := testutil.NewAlbumBuilder().WithOwner(owner).Build(t, testDB.DB)

		caps, err := accessService.Resolve(ctx, stranger.ID, album)
		require.NoError(t, err)
		assert.Equal(t, domain.Capabilities{}, caps)
	})

	t.Run("a grant row implies view even with both flags off", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		viewer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		album := testutil.NewAlbumBuilder().WithOwner(owner).Build(t, testDB.DB)

		require.NoError(t, repos.Permission.Upsert(ctx, &domain.AlbumPermission{
			AlbumID: album.ID,
			UserID:  viewer.ID,
		}))

		caps, err := accessService.Resolve(ctx, viewer.ID, album)
		require.NoError(t, err)
		assert.Equal(t, domain.Capabilities{View: true}, caps)
	})

	t.Run("grant flags map onto capabilities", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		contributor, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		album := testutil.NewAlbumBuilder().WithOwner(owner).Build(t, testDB.DB)

		require.NoError(t, repos.Permission.Upsert(ctx, &domain.AlbumPermission{
			AlbumID:      album.ID,
			UserID:       contributor.ID,
			CanAddPhotos: true,
		}))

		caps, err := accessService.Resolve(ctx, contributor.ID, album)
		require.NoError(t, err)
		assert.Equal(t, domain.Capabilities{View: true, AddPhotos: true}, caps)
	})
}

func TestAccessService_CanGrant(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	accessService := service.NewAccessService(repos.Permission, repos.Friend)
	ctx := context.Background()

	t.Run("non-owner may not share", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		album := testutil.NewAlbumBuilder().WithOwner(owner).Build(t, testDB.DB)
		testutil.MakeFriends(t, testDB.DB, other, owner)

		err := accessService.CanGrant(ctx, other.ID, album, owner.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("owner may only share with friends", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		album := testutil.NewAlbumBuilder().WithOwner(owner).Build(t, testDB.DB)

		err := accessService.CanGrant(ctx, owner.ID, album, stranger.ID)
		assert.ErrorIs(t, err, domain.ErrNotFriends)

		testutil.MakeFriends(t, testDB.DB, owner, stranger)
		assert.NoError(t, accessService.CanGrant(ctx, owner.ID, album, stranger.ID))
	})
}

// TestAlbumSharing_EndToEnd walks the full sharing path through the
// services: a grant to a stranger is refused, becoming friends unlocks
// it, and the granted flags come back out of Resolve.
func TestAlbumSharing_EndToEnd(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	accessService := service.NewAccessService(repos.Permission, repos.Friend)
	friendService := service.NewFriendService(repos.Friend, repos.User, service.NopNotifier{})
	albumService := service.NewAlbumService(repos.Album, repos.Permission, accessService, service.NopNotifier{})
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	album, err := albumService.Create(ctx, alice.ID, service.CreateAlbumInput{Name: "Vacation"})
	require.NoError(t, err)

	grant := service.GrantInput{TargetUserID: bob.ID, CanAddPhotos: true}

	_, err = albumService.Grant(ctx, alice.ID, album.ID, grant)
	require.ErrorIs(t, err, domain.ErrNotFriends)

	request, err := friendService.SendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, friendService.AcceptRequest(ctx, request.ID, bob.ID))

	_, err = albumService.Grant(ctx, alice.ID, album.ID, grant)
	require.NoError(t, err)

	caps, err := accessService.Resolve(ctx, bob.ID, album)
	require.NoError(t, err)
	assert.Equal(t, domain.Capabilities{View: true, AddPhotos: true, DeletePhotos: false}, caps)

	// Bob now sees the album in his accessible listing and can fetch it.
	albums, err := albumService.ListAccessible(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, album.ID, albums[0].ID)

	fetched, err := albumService.Get(ctx, bob.ID, album.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, fetched.OwnerID)

	// Unfriending does not revoke the standing grant.
	require.NoError(t, friendService.RemoveFriend(ctx, alice.ID, bob.ID))
	caps, err = accessService.Resolve(ctx, bob.ID, album)
	require.NoError(t, err)
	assert.True(t, caps.View)
}
