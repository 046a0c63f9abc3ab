package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/platform/redis"
)

// RedisConfirmationIssuer generates the opaque, unique, monotonic
// confirmation number shown to a driver via Redis INCR, prefixed with
// a UTC date stamp. INCR's atomicity is what guarantees uniqueness
// under concurrent submissions; date scoping keeps the counter itself
// short while the embedded integer still orders monotonically within
// a day.
type RedisConfirmationIssuer struct {
	client *redis.Client
}

// NewRedisConfirmationIssuer creates a new issuer.
func NewRedisConfirmationIssuer(client *redis.Client) *RedisConfirmationIssuer {
	return &RedisConfirmationIssuer{client: client}
}

// Next returns the next confirmation number for periodID.
func (i *RedisConfirmationIssuer) Next(ctx context.Context, periodID string) (string, error) {
	day := time.Now().UTC().Format("20060102")
	key := fmt.Sprintf("confirm:%s:%s", periodID, day)

	n, err := i.client.Incr(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%06d", day, periodID[:8], n), nil
}
