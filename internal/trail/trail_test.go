package trail

import (
	"context"
	"errors"
	"testing"
	"time"

	"relay-api/internal/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type fakeStore struct {
	data   map[string]string
	setErr error
	getErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func newTestRecorder(s store) *Recorder {
	return &Recorder{redis: s, log: zap.NewNop().Sugar()}
}

func TestKey(t *testing.T) {
	if got := Key("req_abc123"); got != "trail:req_abc123" {
		t.Errorf("Key() = %q, want trail:req_abc123", got)
	}
}

func TestRecordAndLookup(t *testing.T) {
	s := newFakeStore()
	r := newTestRecorder(s)
	message := "upstream error: status 503"
	env := shared.SendMessageResult{
		Result:    "",
		RequestID: "req_abc123",
		Timestamp: "2026-08-31T12:00:00Z",
		Error:     &message,
	}

	r.Record(context.Background(), "sendMessage", env)

	entry, err := r.Lookup(context.Background(), "req_abc123")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if entry == nil {
		t.Fatal("Lookup() = nil, want recorded entry")
	}
	if entry.Operation != "sendMessage" {
		t.Errorf("Operation = %q, want sendMessage", entry.Operation)
	}
	if entry.Error != message {
		t.Errorf("Error = %q, want %q", entry.Error, message)
	}
	if entry.Timestamp != env.Timestamp {
		t.Errorf("Timestamp = %q, want %q", entry.Timestamp, env.Timestamp)
	}
}

// TestLookupMissing verifies an unknown id comes back as (nil, nil), not an
// error.
func TestLookupMissing(t *testing.T) {
	r := newTestRecorder(newFakeStore())
	entry, err := r.Lookup(context.Background(), "req_unknown")
	if err != nil {
		t.Fatalf("Lookup() error = %v, want nil", err)
	}
	if entry != nil {
		t.Errorf("Lookup() = %+v, want nil", entry)
	}
}

// TestRecordWriteFailure verifies a failed write is swallowed; recording is
// best effort and never reaches the caller.
func TestRecordWriteFailure(t *testing.T) {
	s := newFakeStore()
	s.setErr = errors.New("connection refused")
	r := newTestRecorder(s)

	r.Record(context.Background(), "sendMessage", shared.SendMessageResult{RequestID: "req_abc123"})

	if len(s.data) != 0 {
		t.Errorf("data = %v, want nothing stored", s.data)
	}
}

func TestLookupStoreError(t *testing.T) {
	s := newFakeStore()
	s.getErr = errors.New("connection refused")
	r := newTestRecorder(s)

	_, err := r.Lookup(context.Background(), "req_abc123")
	if err == nil {
		t.Fatal("Lookup() error = nil, want store failure")
	}
}
