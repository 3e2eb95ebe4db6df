package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"festfront/internal/config"
)

// RedisStore keeps sessions as a hash per token with a TTL, so expiry needs
// no sweeping.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg config.Redis, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisStore) Save(ctx context.Context, sess Session) (string, error) {
	token := uuid.New().String()
	key := sessionKey(token)

	fields := map[string]interface{}{
		"rollNumber": sess.RollNumber,
		"name":       sess.Name,
		"email":      sess.Email,
	}

	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to set session ttl: %w", err)
	}

	return token, nil
}

func (s *RedisStore) Load(ctx context.Context, token string) (Session, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	if len(result) == 0 {
		return Session{}, ErrNotFound
	}

	return Session{
		RollNumber: result["rollNumber"],
		Name:       result["name"],
		Email:      result["email"],
	}, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
