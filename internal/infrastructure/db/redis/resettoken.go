package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

// ResetTokenStore keeps password-reset token digests in Redis with a TTL.
// Key format: pwreset:<sha256-digest> → user id. Expiry makes every token
// single-window; Consume makes it single-use.
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func (s *ResetTokenStore) Save(ctx context.Context, digest, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(digest), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Consume atomically fetches and deletes the digest's binding. An unknown or
// expired digest answers the invalid-token application error.
func (s *ResetTokenStore) Consume(ctx context.Context, digest string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(digest)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrInvalidResetToken
	}
	if err != nil {
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

func (s *ResetTokenStore) key(digest string) string {
	return "pwreset:" + digest
}
