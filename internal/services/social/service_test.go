package social

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/friends"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/notifications"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.service = NewService(&ServiceConfig{
		FriendRepository:       friends.NewInMemoryRepository(),
		NotificationRepository: notifications.NewInMemoryRepository(),
		UUIDGenerator:          uuid.NewGoogleUUIDGenerator(),
		// Zero delay makes the simulated accept synchronous enough to
		// observe right after SendRequest returns
		AcceptDelay: 0,
		Random:      rand.New(rand.NewSource(1)),
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// awaitStatus polls until the friend reaches the wanted status; the
// zero-delay timer still fires on another goroutine
func (s *ServiceTestSuite) awaitStatus(ownerID, friendID string, want entities.FriendStatus) *entities.Friend {
	var last *entities.Friend
	s.Require().Eventually(func() bool {
		list, err := s.service.ListFriends(s.ctx, ownerID)
		if err != nil {
			return false
		}
		for _, f := range list {
			if f.ID == friendID {
				last = f
				return f.Status == want
			}
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)
	return last
}

func (s *ServiceTestSuite) TestSendRequest_AutoAccepted() {
	friend, err := s.service.SendRequest(s.ctx, "owner", "Lyra")
	s.Require().NoError(err)
	s.Equal(entities.FriendStatusPendingSent, friend.Status)
	s.Contains(friend.Avatar, "seed=Lyra")

	accepted := s.awaitStatus("owner", friend.ID, entities.FriendStatusAccepted)
	s.True(accepted.IsOnline)

	s.Require().Eventually(func() bool {
		list, err := s.service.ListNotifications(s.ctx, "owner")
		return err == nil && len(list) == 1
	}, 2*time.Second, 5*time.Millisecond)

	list, err := s.service.ListNotifications(s.ctx, "owner")
	s.Require().NoError(err)
	s.Equal(entities.NotificationFriendAccept, list[0].Kind)
	s.Equal("Lyra accepted your friend request!", list[0].Message)
}

func (s *ServiceTestSuite) TestSendRequest_DuplicateName() {
	_, err := s.service.SendRequest(s.ctx, "owner", "Lyra")
	s.Require().NoError(err)

	_, err = s.service.SendRequest(s.ctx, "owner", "lyra")
	s.Error(err)
	s.True(apperrors.IsAlreadyExists(err), "the duplicate check ignores case")
}

func (s *ServiceTestSuite) TestSimulateIncoming() {
	friend, err := s.service.SimulateIncoming(s.ctx, "owner")
	s.Require().NoError(err)
	s.Equal(entities.FriendStatusPendingReceived, friend.Status)
	s.Contains(simulatedPeers, friend.Name)

	list, err := s.service.ListNotifications(s.ctx, "owner")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(entities.NotificationFriendRequest, list[0].Kind)
	s.Equal(friend.Name+" sent you a friend request.", list[0].Message)
	s.Equal(friend.ID, list[0].Data)
}

func (s *ServiceTestSuite) TestAcceptRequest() {
	friend, err := s.service.SimulateIncoming(s.ctx, "owner")
	s.Require().NoError(err)

	s.Require().NoError(s.service.AcceptRequest(s.ctx, "owner", friend.ID))

	accepted := s.awaitStatus("owner", friend.ID, entities.FriendStatusAccepted)
	s.True(accepted.IsOnline)

	s.True(apperrors.IsNotFound(s.service.AcceptRequest(s.ctx, "owner", "ghost")))
}

func (s *ServiceTestSuite) TestDeclineRequest() {
	friend, err := s.service.SimulateIncoming(s.ctx, "owner")
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeclineRequest(s.ctx, "owner", friend.ID))

	list, err := s.service.ListFriends(s.ctx, "owner")
	s.Require().NoError(err)
	s.Empty(list)

	s.True(apperrors.IsNotFound(s.service.DeclineRequest(s.ctx, "owner", friend.ID)))
}

func (s *ServiceTestSuite) TestNotificationsNewestFirst() {
	_, err := s.service.SimulateIncoming(s.ctx, "owner")
	s.Require().NoError(err)
	s.Require().NoError(s.service.InviteToCampaign(s.ctx, "owner", "Lyra", "The Whispering Shadows"))

	list, err := s.service.ListNotifications(s.ctx, "owner")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(entities.NotificationCampaignInvite, list[0].Kind)
	s.Equal(`Invitation sent to Lyra for "The Whispering Shadows"`, list[0].Message)
}

func (s *ServiceTestSuite) TestUnreadCountAndMarkRead() {
	_, err := s.service.SimulateIncoming(s.ctx, "owner")
	s.Require().NoError(err)
	s.Require().NoError(s.service.InviteToCampaign(s.ctx, "owner", "Lyra", "Neon Nights Heist"))

	count, err := s.service.UnreadCount(s.ctx, "owner")
	s.Require().NoError(err)
	s.Equal(2, count)

	list, err := s.service.ListNotifications(s.ctx, "owner")
	s.Require().NoError(err)
	s.Require().NoError(s.service.MarkRead(s.ctx, "owner", list[0].ID))

	count, err = s.service.UnreadCount(s.ctx, "owner")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ServiceTestSuite) TestClearNotifications() {
	_, err := s.service.SimulateIncoming(s.ctx, "owner")
	s.Require().NoError(err)

	s.Require().NoError(s.service.ClearNotifications(s.ctx, "owner"))

	list, err := s.service.ListNotifications(s.ctx, "owner")
	s.Require().NoError(err)
	s.Empty(list)
}
