package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces profile keys
const DefaultKeyPrefix = "profile:"

// setIfNewer stores ARGV[1] unless the cached entry carries a version at
// least ARGV[2]. ARGV[3] is the TTL in milliseconds, 0 for none.
var setIfNewer = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current then
  local ok, decoded = pcall(cjson.decode, current)
  if ok and type(decoded) == 'table' and tonumber(decoded.version) ~= nil
    and tonumber(decoded.version) >= tonumber(ARGV[2]) then
    return 0
  end
end
if tonumber(ARGV[3]) > 0 then
  redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
  redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// cachedProfile is the JSON form of a user row in redis
type cachedProfile struct {
	ID               string    `json:"id"`
	ReputationPoints int64     `json:"reputation_points"`
	Blocked          bool      `json:"blocked"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	// Version is UpdatedAt in microseconds; real timestamps stay exact as a Lua number
	Version int64 `json:"version"`
}

// RedisProfileCache implements persistence.ProfileCache on go-redis
type RedisProfileCache struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
	logger    coreport.Logger
}

var _ persistence.ProfileCache = (*RedisProfileCache)(nil)

// NewRedisProfileCache creates a cache whose entries expire after ttl
func NewRedisProfileCache(client redis.UniversalClient, keyPrefix string, ttl time.Duration, logger coreport.Logger) *RedisProfileCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisProfileCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger,
	}
}

func (c *RedisProfileCache) key(userID string) string {
	return c.keyPrefix + userID
}

// Get returns the cached user; a missing key is a miss, not an error
func (c *RedisProfileCache) Get(ctx context.Context, userID string) (*entity.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("profile cache get %s: %w", userID, err)
	}

	var profile cachedProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// A corrupt entry is dropped and treated as a miss
		c.logger.Warn("Dropping unreadable profile cache entry", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		_ = c.client.Del(ctx, c.key(userID)).Err()
		return nil, false, nil
	}

	return &entity.User{
		ID:               profile.ID,
		ReputationPoints: profile.ReputationPoints,
		Blocked:          profile.Blocked,
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}, true, nil
}

// Set stores the user with the configured TTL. An entry with the same or a
// newer UpdatedAt is kept, so a reader that loaded the row before a write
// cannot overwrite the row the writer cached after it.
func (c *RedisProfileCache) Set(ctx context.Context, user *entity.User) error {
	version := user.UpdatedAt.UnixMicro()
	raw, err := json.Marshal(cachedProfile{
		ID:               user.ID,
		ReputationPoints: user.ReputationPoints,
		Blocked:          user.Blocked,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
		Version:          version,
	})
	if err != nil {
		return fmt.Errorf("profile cache encode %s: %w", user.ID, err)
	}

	stored, err := setIfNewer.Run(ctx, c.client, []string{c.key(user.ID)}, raw, version, c.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("profile cache set %s: %w", user.ID, err)
	}
	if stored == 0 {
		c.logger.Debug("Kept newer cached profile", map[string]any{
			"user_id": user.ID,
			"version": version,
		})
	}
	return nil
}

// Invalidate removes the user's entry
func (c *RedisProfileCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("profile cache invalidate %s: %w", userID, err)
	}
	return nil
}

// NoopProfileCache always misses; used when caching is disabled
type NoopProfileCache struct{}

var _ persistence.ProfileCache = NoopProfileCache{}

// Get always misses
func (NoopProfileCache) Get(context.Context, string) (*entity.User, bool, error) {
	return nil, false, nil
}

// Set does nothing
func (NoopProfileCache) Set(context.Context, *entity.User) error { return nil }

// Invalidate does nothing
func (NoopProfileCache) Invalidate(context.Context, string) error { return nil }
