package entities

import "time"

// UserProfile is the single profile record for a user
type UserProfile struct {
	Username   string    `json:"username"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	PlayStyles []string  `json:"play_styles,omitempty"`
	Location   string    `json:"location,omitempty"`
	JoinedAt   time.Time `json:"joined_at"`
}
