package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const chatChannelPrefix = "club:chat"

// ChatRepository is the realtime channel for club chat: an opaque event
// bus carrying row-insert notifications. Delivery guarantees belong to the
// bus; subscribers apply inserts idempotently by message ID.
type ChatRepository struct{}

func ChatChannel(clubID uint64) string {
	return fmt.Sprintf("%s:%d", chatChannelPrefix, clubID)
}

func (r *ChatRepository) Publish(ctx context.Context, clubID uint64, payload []byte) error {
	return Client.Publish(ctx, ChatChannel(clubID), payload).Err()
}

func (r *ChatRepository) Subscribe(ctx context.Context, clubID uint64) *redis.PubSub {
	return Client.Subscribe(ctx, ChatChannel(clubID))
}
