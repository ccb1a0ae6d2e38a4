package service

// Event names pushed to connected websocket clients.
const (
	EventFriendRequest  = "friend.request"
	EventFriendAccepted = "friend.accepted"
	EventAlbumShared    = "album.shared"
)

// Notifier delivers best-effort events to a user's open connections.
// Delivery is fire-and-forget; offline users miss the event.
type Notifier interface {
	Notify(userID uint, event string, payload interface{})
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) Notify(uint, string, interface{}) {}
