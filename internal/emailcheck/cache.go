package emailcheck

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const livenessKeyPrefix = "emailcheck:liveness:"

// LivenessCache memoizes per-domain liveness outcomes in Redis so a
// burst of registrations for the same provider costs one DNS round trip
// instead of one per request. Cache misses and Redis failures both fall
// through to a live lookup; the cache can only make validation faster,
// never change a verdict under stable DNS.
type LivenessCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLivenessCache creates a cache on an existing Redis client. A zero
// or negative ttl defaults to one hour, matching how long MX topology
// can reasonably be assumed stable.
func NewLivenessCache(client *redis.Client, ttl time.Duration) *LivenessCache {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &LivenessCache{client: client, ttl: ttl}
}

// Get returns the cached liveness state for a domain, if present.
func (c *LivenessCache) Get(ctx context.Context, domain string) (Liveness, bool) {
	val, err := c.client.Get(ctx, livenessKeyPrefix+domain).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[emailcheck] liveness cache read failed for %s: %v", domain, err)
		}
		return "", false
	}
	switch state := Liveness(val); state {
	case LivenessMX, LivenessAOnly, LivenessNone:
		return state, true
	default:
		return "", false
	}
}

// Put stores the liveness state for a domain. Errors are logged and
// dropped; a failed write only means the next call resolves live again.
func (c *LivenessCache) Put(ctx context.Context, domain string, state Liveness) {
	if err := c.client.Set(ctx, livenessKeyPrefix+domain, string(state), c.ttl).Err(); err != nil {
		log.Printf("[emailcheck] liveness cache write failed for %s: %v", domain, err)
	}
}
