// Package trail records per-request outcomes to redis for diagnostics
package trail

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"relay-api/internal/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Entry struct {
	Operation string `json:"operation"`
	Result    string `json:"result"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// store is the slice of the redis client the recorder uses; tests substitute
// an in-memory fake.
type store interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

type Recorder struct {
	redis store
	log   *zap.SugaredLogger
}

func NewRecorder(redisClient *redis.Client, log *zap.SugaredLogger) *Recorder {
	return &Recorder{redis: redisClient, log: log}
}

func Key(requestID string) string {
	return "trail:" + requestID
}

// Record is best effort. A trail write failure is logged and otherwise
// ignored, the caller's response never depends on it.
func (r *Recorder) Record(ctx context.Context, operation string, env shared.SendMessageResult) {
	entry := Entry{
		Operation: operation,
		Result:    env.Result,
		Error:     shared.DerefString(env.Error),
		Timestamp: env.Timestamp,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		r.log.Errorw("Error marshalling trail entry", "error", err)
		return
	}
	if err := r.redis.Set(ctx, Key(env.RequestID), raw, shared.TrailTTL).Err(); err != nil {
		r.log.Warnw("Failed to record trail entry", "request_id", env.RequestID, "error", err.Error())
	}
}

// Lookup returns nil without error when no entry exists for the id.
func (r *Recorder) Lookup(ctx context.Context, requestID string) (*Entry, error) {
	raw, err := r.redis.Get(ctx, Key(requestID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
