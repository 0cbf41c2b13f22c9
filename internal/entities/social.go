package entities

import "time"

// FriendStatus tracks the lifecycle of a friend relationship.
// Pending entries either get accepted or are removed; there is no
// blocked state.
type FriendStatus string

const (
	FriendStatusPendingSent     FriendStatus = "pending_sent"
	FriendStatusPendingReceived FriendStatus = "pending_received"
	FriendStatusAccepted        FriendStatus = "accepted"
)

// Friend is an entry on a user's friend list
type Friend struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Status   FriendStatus `json:"status"`
	Avatar   string       `json:"avatar,omitempty"`
	IsOnline bool         `json:"is_online"`
}

// NotificationKind classifies a notification
type NotificationKind string

const (
	NotificationFriendRequest  NotificationKind = "friend_request"
	NotificationFriendAccept   NotificationKind = "friend_accept"
	NotificationSystem         NotificationKind = "system"
	NotificationCampaignInvite NotificationKind = "campaign_invite"
)

// AppNotification is a user-facing notification. After creation only the
// read flag changes; the list is cleared all at once, never pruned.
type AppNotification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Data      string           `json:"data,omitempty"`
}
