package entities

import "time"

// MessageRole identifies who authored a chat message
type MessageRole string

const (
	MessageRoleUser   MessageRole = "user"
	MessageRoleModel  MessageRole = "model"
	MessageRoleSystem MessageRole = "system"
)

// MessageKind identifies how a chat message should be rendered
type MessageKind string

const (
	MessageKindText  MessageKind = "text"
	MessageKindRoll  MessageKind = "roll"
	MessageKindImage MessageKind = "image"
	MessageKindVoice MessageKind = "voice_transcript"
)

// ChatMessage is one entry in a session transcript.
// The transcript is append-only; messages are never edited in place.
type ChatMessage struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"sender_id"`
	SenderName string      `json:"sender_name"`
	Role       MessageRole `json:"role"`
	Content    string      `json:"content"`
	ImageURL   string      `json:"image_url,omitempty"`
	Kind       MessageKind `json:"kind"`
	Timestamp  time.Time   `json:"timestamp"`
}
