package social

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/friends"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/notifications"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

// simulatedPeers are the canned identities used to fake incoming
// requests until real federation exists
var simulatedPeers = []string{"Gandalf_The_Grey", "Cyber_Ninja", "Vader42", "Lara_Croft"}

func avatarURL(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", name)
}

// Service manages friend lists and notifications
type Service interface {
	// ListFriends retrieves the owner's friend list
	ListFriends(ctx context.Context, ownerID string) ([]*entities.Friend, error)

	// SendRequest records an outgoing request. The simulated peer
	// accepts it after a configured delay.
	SendRequest(ctx context.Context, ownerID, name string) (*entities.Friend, error)

	// SimulateIncoming fakes an incoming request from a canned peer
	SimulateIncoming(ctx context.Context, ownerID string) (*entities.Friend, error)

	// AcceptRequest accepts a pending received request
	AcceptRequest(ctx context.Context, ownerID, friendID string) error

	// DeclineRequest removes a pending entry from the list
	DeclineRequest(ctx context.Context, ownerID, friendID string) error

	// InviteToCampaign notifies a friend of a campaign invitation
	InviteToCampaign(ctx context.Context, ownerID, friendName, campaignTitle string) error

	// ListNotifications retrieves notifications, newest first
	ListNotifications(ctx context.Context, ownerID string) ([]*entities.AppNotification, error)

	// UnreadCount counts unread notifications
	UnreadCount(ctx context.Context, ownerID string) (int, error)

	// MarkRead flags one notification as read
	MarkRead(ctx context.Context, ownerID, notificationID string) error

	// ClearNotifications drops the whole list
	ClearNotifications(ctx context.Context, ownerID string) error
}

type service struct {
	friends       friends.Repository
	notifications notifications.Repository
	uuidGen       uuid.Generator
	acceptDelay   time.Duration
	random        *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	FriendRepository       friends.Repository
	NotificationRepository notifications.Repository
	UUIDGenerator          uuid.Generator
	AcceptDelay            time.Duration
	Random                 *rand.Rand // optional, defaults to a time-seeded source
}

// NewService creates a new social service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.FriendRepository == nil {
		panic("friend repository is required")
	}
	if cfg.NotificationRepository == nil {
		panic("notification repository is required")
	}
	if cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	svc := &service{
		friends:       cfg.FriendRepository,
		notifications: cfg.NotificationRepository,
		uuidGen:       cfg.UUIDGenerator,
		acceptDelay:   cfg.AcceptDelay,
		random:        cfg.Random,
	}
	if svc.random == nil {
		svc.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return svc
}

func (s *service) ListFriends(ctx context.Context, ownerID string) ([]*entities.Friend, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}
	return s.friends.List(ctx, ownerID)
}

func (s *service) SendRequest(ctx context.Context, ownerID, name string) (*entities.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.InvalidArgument("friend name is required")
	}
	list, err := s.ListFriends(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, f := range list {
		if strings.EqualFold(f.Name, name) {
			return nil, apperrors.AlreadyExistsf("%s is already on the friend list or pending", name)
		}
	}

	friend := &entities.Friend{
		ID:     s.uuidGen.New(),
		Name:   name,
		Status: entities.FriendStatusPendingSent,
		Avatar: avatarURL(name),
	}
	if err := s.friends.Save(ctx, ownerID, append(list, friend)); err != nil {
		return nil, err
	}

	// Simulated peer: accept on a timer so the UI can show the pending
	// state first. The callback outlives the request context.
	time.AfterFunc(s.acceptDelay, func() {
		s.completeSimulatedAccept(context.Background(), ownerID, friend.ID, name)
	})
	return friend, nil
}

func (s *service) completeSimulatedAccept(ctx context.Context, ownerID, friendID, name string) {
	if err := s.AcceptRequest(ctx, ownerID, friendID); err != nil {
		log.Warn().Err(err).Str("friend_id", friendID).Msg("simulated accept failed")
		return
	}
	if err := s.addNotification(ctx, ownerID, entities.NotificationFriendAccept,
		fmt.Sprintf("%s accepted your friend request!", name), ""); err != nil {
		log.Warn().Err(err).Str("friend_id", friendID).Msg("failed to record accept notification")
	}
}

func (s *service) SimulateIncoming(ctx context.Context, ownerID string) (*entities.Friend, error) {
	list, err := s.ListFriends(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	name := simulatedPeers[s.random.Intn(len(simulatedPeers))]

	friend := &entities.Friend{
		ID:     s.uuidGen.New(),
		Name:   name,
		Status: entities.FriendStatusPendingReceived,
		Avatar: avatarURL(name),
	}
	if err := s.friends.Save(ctx, ownerID, append(list, friend)); err != nil {
		return nil, err
	}
	if err := s.addNotification(ctx, ownerID, entities.NotificationFriendRequest,
		fmt.Sprintf("%s sent you a friend request.", name), friend.ID); err != nil {
		return nil, err
	}
	return friend, nil
}

func (s *service) AcceptRequest(ctx context.Context, ownerID, friendID string) error {
	list, err := s.ListFriends(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, f := range list {
		if f.ID == friendID {
			f.Status = entities.FriendStatusAccepted
			f.IsOnline = true
			return s.friends.Save(ctx, ownerID, list)
		}
	}
	return apperrors.NotFoundf("friend %s not found", friendID)
}

func (s *service) DeclineRequest(ctx context.Context, ownerID, friendID string) error {
	list, err := s.ListFriends(ctx, ownerID)
	if err != nil {
		return err
	}
	filtered := list[:0]
	found := false
	for _, f := range list {
		if f.ID == friendID {
			found = true
			continue
		}
		filtered = append(filtered, f)
	}
	if !found {
		return apperrors.NotFoundf("friend %s not found", friendID)
	}
	return s.friends.Save(ctx, ownerID, filtered)
}

func (s *service) InviteToCampaign(ctx context.Context, ownerID, friendName, campaignTitle string) error {
	if strings.TrimSpace(friendName) == "" {
		return apperrors.InvalidArgument("friend name is required")
	}
	return s.addNotification(ctx, ownerID, entities.NotificationCampaignInvite,
		fmt.Sprintf("Invitation sent to %s for %q", friendName, campaignTitle), "")
}

func (s *service) ListNotifications(ctx context.Context, ownerID string) ([]*entities.AppNotification, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}
	return s.notifications.List(ctx, ownerID)
}

func (s *service) UnreadCount(ctx context.Context, ownerID string) (int, error) {
	list, err := s.ListNotifications(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *service) MarkRead(ctx context.Context, ownerID, notificationID string) error {
	list, err := s.ListNotifications(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, n := range list {
		if n.ID == notificationID {
			n.Read = true
			return s.notifications.Save(ctx, ownerID, list)
		}
	}
	return apperrors.NotFoundf("notification %s not found", notificationID)
}

func (s *service) ClearNotifications(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return apperrors.InvalidArgument("owner ID is required")
	}
	return s.notifications.Save(ctx, ownerID, []*entities.AppNotification{})
}

// addNotification prepends a notification so the list stays newest-first
func (s *service) addNotification(ctx context.Context, ownerID string, kind entities.NotificationKind, message, data string) error {
	list, err := s.notifications.List(ctx, ownerID)
	if err != nil {
		return err
	}
	notification := &entities.AppNotification{
		ID:        s.uuidGen.New(),
		Kind:      kind,
		Message:   message,
		Timestamp: time.Now(),
		Data:      data,
	}
	return s.notifications.Save(ctx, ownerID, append([]*entities.AppNotification{notification}, list...))
}
