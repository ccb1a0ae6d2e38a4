package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/picsure/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(name string) *UserBuilder {
	b.username = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"username": b.username,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	user := &domain.User{
		ID:       authResp.User.ID,
		Username: authResp.User.Username,
		Email:    authResp.User.Email,
	}

	return user, authResp.Token
}

// AlbumBuilder creates test albums
type AlbumBuilder struct {
	name  string
	owner *domain.User
}

// NewAlbumBuilder creates a new AlbumBuilder with default values
func NewAlbumBuilder() *AlbumBuilder {
	return &AlbumBuilder{
		name: fmt.Sprintf("album_%s", uuid.New().String()[:8]),
	}
}

// WithName sets the album name
func (b *AlbumBuilder) WithName(name string) *AlbumBuilder {
	b.name = name
	return b
}

// WithOwner sets the album owner
func (b *AlbumBuilder) WithOwner(user *domain.User) *AlbumBuilder {
	b.owner = user
	return b
}

// Build creates the album in the database
func (b *AlbumBuilder) Build(t *testing.T, db *gorm.DB) *domain.Album {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	album := &domain.Album{
		Name:    b.name,
		OwnerID: b.owner.ID,
	}

	if err := db.Create(album).Error; err != nil {
		t.Fatalf("failed to create album: %v", err)
	}

	return album
}

// MakeFriends inserts an accepted request and both directed friendship
// rows for the pair, bypassing the request flow.
func MakeFriends(t *testing.T, db *gorm.DB, userA, userB *domain.User) {
	t.Helper()

	request := &domain.FriendRequest{
		SenderID:   userA.ID,
		ReceiverID: userB.ID,
		Status:     domain.FriendRequestAccepted,
	}
	request.NormalizePair()
	if err := db.Create(request).Error; err != nil {
		t.Fatalf("failed to create friend request: %v", err)
	}

	edges := []domain.Friendship{
		{UserID: userA.ID, FriendID: userB.ID},
		{UserID: userB.ID, FriendID: userA.ID},
	}
	if err := db.Create(&edges).Error; err != nil {
		t.Fatalf("failed to create friendship rows: %v", err)
	}
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
