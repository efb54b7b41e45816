package service

import (
	"context"
	"encoding/json"
	"sync"

	"campusconnect/internal/model"
	"campusconnect/internal/repository/mysql"
	"campusconnect/internal/repository/redis"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ChatService posts club messages and mirrors them onto the realtime
// channel. The channel is an external event bus: the service only
// publishes row-insert notifications and applies the ones it receives
// idempotently by message ID.
type ChatService struct {
	messages *mysql.MessageRepository
	clubs    *mysql.ClubRepository
	bus      *redis.ChatRepository
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{
		messages: mysql.NewMessageRepository(db),
		clubs:    mysql.NewClubRepository(db),
		bus:      &redis.ChatRepository{},
	}
}

func (s *ChatService) Messages(actorID, clubID uint64, limit int) ([]model.ClubMessage, error) {
	ok, err := s.clubs.IsMember(clubID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotMember
	}
	return s.messages.ListByClub(clubID, limit)
}

// Post inserts the message, then notifies the channel. A publish failure
// is logged, not surfaced: the row is the source of truth and subscribers
// recover on their next fetch.
func (s *ChatService) Post(ctx context.Context, actorID, clubID uint64, content string) (*model.ClubMessage, error) {
	ok, err := s.clubs.IsMember(clubID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotMember
	}

	msg := &model.ClubMessage{
		ID:      uuid.NewString(),
		ClubID:  clubID,
		UserID:  actorID,
		Content: content,
	}
	if _, err := s.messages.Create(msg); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(msg)
	if err := s.bus.Publish(ctx, clubID, payload); err != nil {
		logrus.WithError(err).WithField("club_id", clubID).Warn("chat publish failed")
	}
	return msg, nil
}

// ChatFeed is a per-club subscriber view of the channel. Applying an
// insert the feed already holds (its own echo included) is a no-op.
type ChatFeed struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	recent []model.ClubMessage
}

func NewChatFeed() *ChatFeed {
	return &ChatFeed{seen: make(map[string]struct{})}
}

// Apply records a row-insert notification. Returns false when the message
// ID was already present.
func (f *ChatFeed) Apply(msg model.ClubMessage) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.seen[msg.ID]; dup {
		return false
	}
	f.seen[msg.ID] = struct{}{}
	f.recent = append(f.recent, msg)
	return true
}

func (f *ChatFeed) Recent() []model.ClubMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.ClubMessage, len(f.recent))
	copy(out, f.recent)
	return out
}

// Run pumps the realtime channel into the feed until ctx is cancelled.
func (s *ChatService) Run(ctx context.Context, clubID uint64, feed *ChatFeed) {
	sub := s.bus.Subscribe(ctx, clubID)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var msg model.ClubMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				logrus.WithError(err).Warn("chat feed: bad payload")
				continue
			}
			feed.Apply(msg)
		}
	}
}
