// Package pubsub carries collection-change signals over Redis pub/sub. A
// mutation publishes the collection name on its channel; subscribers react by
// re-reading the full collection, so no payload travels with the signal and a
// missed message at worst delays a refresh until the next mutation.
package pubsub

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
)

// channelPrefix namespaces the per-collection change channels.
const channelPrefix = "cashflow:changes:"

// ChannelFor returns the Redis channel name for a collection.
func ChannelFor(collection string) string {
	return channelPrefix + collection
}

// redisNotifier implements adapter.ChangeNotifier on Redis pub/sub.
type redisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a new Redis-backed change notifier.
func NewRedisNotifier(client *redis.Client) adapter.ChangeNotifier {
	return &redisNotifier{
		client: client,
	}
}

// NotifyChanged publishes the change signal. Publish failures are logged and
// swallowed: the mutation already committed and must not be rolled back over
// a notification hiccup.
func (n *redisNotifier) NotifyChanged(ctx context.Context, collection string) {
	if err := n.client.Publish(ctx, ChannelFor(collection), collection).Err(); err != nil {
		slog.Error("Failed to publish change notification",
			"collection", collection,
			"error", err,
		)
	}
}
