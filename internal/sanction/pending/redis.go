package pending

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	id "warden/pkg/domain"
)

// Redis-backed trackers answer the restart question: with these selected, an
// in-flight expectation or open dispute survives a process restart. Key TTLs
// bound orphaned state; the dispute TTL should exceed the scheduler deadline
// so expiry is decided by the timer, not by Redis reaping the key first.
const (
	evidenceKeyPrefix = "warden:evidence:"
	disputeKeyPrefix  = "warden:"

	// defaultEvidenceTTL caps how long an upload expectation stays
	// claimable before it is quietly dropped.
	defaultEvidenceTTL = 15 * time.Minute
)

// RedisEvidenceTracker stores evidence expectations under per-actor keys.
type RedisEvidenceTracker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEvidenceTracker(client *redis.Client) *RedisEvidenceTracker {
	return &RedisEvidenceTracker{client: client, ttl: defaultEvidenceTTL}
}

func (t *RedisEvidenceTracker) Expect(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error {
	// Plain SET: a newer expectation replaces the old one, last writer wins.
	return t.client.Set(ctx, evidenceKeyPrefix+actor.String(), int64(sanctionID), t.ttl).Err()
}

func (t *RedisEvidenceTracker) Consume(ctx context.Context, actor id.UserID) (id.SanctionID, bool, error) {
	// GETDEL gives the at-most-once consumption: concurrent consumers
	// cannot both observe the value.
	val, err := t.client.GetDel(ctx, evidenceKeyPrefix+actor.String()).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return id.SanctionID(n), true, nil
}

// RedisDisputeTokens stores dispute tokens as SETNX keys.
type RedisDisputeTokens struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDisputeTokens creates the token store. ttl bounds orphaned tokens
// and should exceed the dispute deadline.
func NewRedisDisputeTokens(client *redis.Client, ttl time.Duration) *RedisDisputeTokens {
	return &RedisDisputeTokens{client: client, ttl: ttl}
}

func (t *RedisDisputeTokens) Open(ctx context.Context, sanctionID id.SanctionID) (bool, error) {
	// SETNX rejects a second open while one is outstanding.
	return t.client.SetNX(ctx, disputeKeyPrefix+Token(sanctionID), "1", t.ttl).Result()
}

func (t *RedisDisputeTokens) IsOpen(ctx context.Context, sanctionID id.SanctionID) (bool, error) {
	n, err := t.client.Exists(ctx, disputeKeyPrefix+Token(sanctionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *RedisDisputeTokens) Close(ctx context.Context, sanctionID id.SanctionID) (bool, error) {
	n, err := t.client.Del(ctx, disputeKeyPrefix+Token(sanctionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
