// Package envelope wraps every sendMessage outcome into the uniform response
// shape
package envelope

import (
	"errors"
	"fmt"
	"time"

	"relay-api/internal/shared"

	"github.com/aidarkhanov/nanoid"
)

// Build is total: every outcome, success or failure, becomes an envelope with
// a freshly generated request id and capture timestamp. Exactly one of result
// and error ends up set.
func Build(content string, err error) shared.SendMessageResult {
	env := shared.SendMessageResult{
		RequestID: NewRequestID(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err == nil && content == "" {
		// A blank success would leave neither result nor error set.
		err = shared.ErrNoContent
	}
	if err == nil {
		env.Result = content
		return env
	}
	message := errorMessage(err)
	env.Error = &message
	return env
}

// NewRequestID generates a fresh correlation id. Ids are never reused across
// retries, so two envelopes for the same logical failure differ.
func NewRequestID() string {
	id, _ := nanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 28)
	return "req_" + id
}

func errorMessage(err error) string {
	var rerr *shared.RequestError
	switch {
	case errors.Is(err, shared.ErrEmptyInput):
		return shared.ErrEmptyInput.Error()
	case errors.As(err, &rerr):
		// Only the status code is surfaced. The raw upstream body stays in
		// the logs.
		return fmt.Sprintf("upstream error: status %d", rerr.StatusCode)
	}
	if message := err.Error(); message != "" {
		return message
	}
	return "request failed"
}
