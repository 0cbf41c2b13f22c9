package entities

import (
	"time"

	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

// CampaignPlayer is a player registered for a scheduled campaign
type CampaignPlayer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ScheduledCampaign is an upcoming game session on the lobby board.
// Campaigns are never cancelled; the board only grows.
type ScheduledCampaign struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	HostName          string            `json:"host_name"`
	Description       string            `json:"description"`
	Genre             GameGenre         `json:"genre"`
	Date              string            `json:"date"` // YYYY-MM-DD
	Time              string            `json:"time"` // HH:MM
	MaxPlayers        int               `json:"max_players"`
	AIEnabled         bool              `json:"ai_enabled"`
	RegisteredPlayers []*CampaignPlayer `json:"registered_players"`
	CreatedAt         time.Time         `json:"created_at"`
}

// IsFull reports whether the campaign has reached capacity
func (c *ScheduledCampaign) IsFull() bool {
	return len(c.RegisteredPlayers) >= c.MaxPlayers
}

// AddPlayer registers a player, enforcing capacity and rejecting
// duplicate registrations by ID or name
func (c *ScheduledCampaign) AddPlayer(player *CampaignPlayer) error {
	if c.IsFull() {
		return apperrors.FailedPreconditionf("campaign %s is full", c.Title)
	}

	for _, p := range c.RegisteredPlayers {
		if p.ID == player.ID || p.Name == player.Name {
			return apperrors.AlreadyExistsf("player %s is already registered", player.Name)
		}
	}

	c.RegisteredPlayers = append(c.RegisteredPlayers, player)
	return nil
}
