package domain

import "errors"

// Token verification errors. The API layer must collapse all of these
// into one opaque "invalid or expired token" response; the distinct
// kinds exist for tests and logs only.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Friendship errors
var (
	ErrAlreadyRequested = errors.New("a pending friend request already exists between these users")
	ErrAlreadyFriends   = errors.New("users are already friends")
	ErrSelfRequest      = errors.New("cannot send a friend request to yourself")
	ErrRequestNotFound  = errors.New("friend request not found")
)

// Access-control errors
var (
	ErrNotOwner   = errors.New("only the album owner can perform this action")
	ErrNotFriends = errors.New("albums can only be shared with friends")
)

// Lookup errors
var (
	ErrGrantNotFound = errors.New("permission not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrAlbumNotFound = errors.New("album not found")
	ErrPhotoNotFound = errors.New("photo not found")
)
