package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/codec"
	"github.com/tutorhub/tutorhub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// SNAPSHOT CACHE
// ══════════════════════════════════════════════════════════════════════════════

// SnapshotCache stores the address book as one JSON document plus a small
// metadata hash. It implements addressbook.Repository and addressbook.Mirror.
type SnapshotCache struct {
	cache *Cache
	now   func() time.Time
}

// NewSnapshotCache creates a SnapshotCache on top of cache.
func NewSnapshotCache(cache *Cache) *SnapshotCache {
	return &SnapshotCache{cache: cache, now: time.Now}
}

// Name identifies the cache in logs.
func (c *SnapshotCache) Name() string { return "redis" }

// Save writes the document and its metadata atomically and announces the
// change on the namespaced channel.
func (c *SnapshotCache) Save(ctx context.Context, src addressbook.ReadOnly) error {
	data, err := codec.Marshal(src)
	if err != nil {
		return retry.Permanent(err)
	}

	ttl := c.cache.config.TTL
	docKey, metaKey := c.cache.Key(KeyAddressBook), c.cache.Key(KeyMeta)
	savedAt := c.now().UTC().Format(time.RFC3339)

	_, err = c.cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, docKey, data, ttl)
		pipe.HSet(ctx, metaKey, metaFields(src, savedAt))
		if ttl > 0 {
			pipe.Expire(ctx, metaKey, ttl)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.cache.Publish(ctx, ChannelChanged, savedAt)
}

func metaFields(src addressbook.ReadOnly, savedAt string) map[string]any {
	return map[string]any{
		"schema_version": codec.SchemaVersion.String(),
		"students":       strconv.Itoa(src.Students().Len()),
		"lessons":        strconv.Itoa(src.Lessons().Len()),
		"saved_at":       savedAt,
	}
}

// Load reads the stored document. Returns addressbook.ErrNoData when the key
// is absent or expired.
func (c *SnapshotCache) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	data, err := c.cache.GetBytes(ctx, c.cache.Key(KeyAddressBook))
	if errors.Is(err, ErrCacheMiss) {
		return nil, addressbook.ErrNoData
	}
	if err != nil {
		return nil, shared.WrapError("redis", "Load", shared.ErrStorage,
			"Could not read the address book from Redis", err)
	}

	book, err := codec.Unmarshal(data)
	if err != nil {
		return nil, shared.WrapError("redis", "Load", shared.ErrStorage,
			"Stored address book is unusable: "+shared.UserMessage(err), err)
	}
	return book, nil
}
