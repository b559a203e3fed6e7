package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
)

// SessionRedisRepository keeps sessions and each session's latest search
// batch in Redis. Both keys expire together.
type SessionRedisRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSessionRedisRepository(client *redis.Client, expiration time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, exp: expiration}
}

func sessionKey(id string) string { return fmt.Sprintf("session:%s", id) }
func searchKey(id string) string  { return fmt.Sprintf("session:%s:search", id) }

// Save stores the session with the repository TTL.
func (r *SessionRedisRepository) Save(ctx context.Context, session *models.Session) error {
	return r.set(ctx, sessionKey(session.ID), session)
}

// Get returns nil, nil for an unknown or expired session.
func (r *SessionRedisRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	found, err := r.get(ctx, sessionKey(id), &session)
	if err != nil || !found {
		return nil, err
	}
	return &session, nil
}

// Delete drops the session and its search batch. Missing keys are not an error.
func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	keys := []string{sessionKey(id), searchKey(id)}
	n, err := r.client.Del(ctx, keys...).Result()
	logger.Log.Infow("redis del", "keys", keys, "result", n, "error", err)
	return err
}

// SaveSearch replaces the session's search batch.
func (r *SessionRedisRepository) SaveSearch(ctx context.Context, sessionID string, batch []models.Candidate) error {
	return r.set(ctx, searchKey(sessionID), batch)
}

// GetSearch returns nil, nil when the session has no stashed batch.
func (r *SessionRedisRepository) GetSearch(ctx context.Context, sessionID string) ([]models.Candidate, error) {
	var batch []models.Candidate
	if _, err := r.get(ctx, searchKey(sessionID), &batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (r *SessionRedisRepository) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("redis set", "key", key, "ttl", r.exp, "error", err)
	return err
}

func (r *SessionRedisRepository) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("redis get", "key", key, "size", len(data), "error", err)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}
