// Package relay implements the request translation and response
// normalization core
package relay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"relay-api/internal/envelope"
	"relay-api/internal/metrics"
	"relay-api/internal/operations"
	"relay-api/internal/setup"
	"relay-api/internal/shared"
	"relay-api/internal/trail"

	"github.com/labstack/echo/v4"
)

// Sender is the outbound half of the relay. The concrete client lives in
// internal/upstream; tests substitute counting fakes.
type Sender interface {
	Send(ctx context.Context, input string) (string, error)
}

type Handler struct {
	Upstream      Sender
	Trail         *trail.Recorder // nil when trail recording is disabled
	StatusMessage string
}

func NewHandler(upstream Sender, recorder *trail.Recorder, statusMessage string) *Handler {
	if statusMessage == "" {
		statusMessage = shared.DefaultStatusMessage
	}
	return &Handler{
		Upstream:      upstream,
		Trail:         recorder,
		StatusMessage: statusMessage,
	}
}

// Relay handles the POST body. Once a query is present the HTTP status is
// always 200; inner failures are reported inside the JSON body.
func (h *Handler) Relay(cc echo.Context) error {
	c := cc.(*setup.Context)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		c.Log.Errorw("Failed to read request body", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, shared.NewErrorsResponse("internal error"))
	}

	var req shared.GraphRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.Log.Warnw("Failed to parse request body", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, shared.NewErrorsResponse("internal error"))
	}

	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, shared.NewErrorsResponse("invalid request"))
	}

	kind := operations.Classify(req.Query)
	switch kind {
	case operations.StatusQuery:
		metrics.OperationCount.WithLabelValues(kind.String(), "ok").Inc()
		return c.JSON(http.StatusOK, shared.StatusResponse{Data: shared.StatusData{Status: h.StatusMessage}})
	case operations.SendMessage:
		return h.sendMessage(c, req)
	}

	metrics.OperationCount.WithLabelValues(kind.String(), "error").Inc()
	return c.JSON(http.StatusOK, shared.NewErrorsResponse(shared.ErrUnsupportedQuery.Error()))
}

func (h *Handler) sendMessage(c *setup.Context, req shared.GraphRequest) error {
	var env shared.SendMessageResult

	// Validation runs strictly before the outbound call so invalid input
	// never spends upstream quota.
	input, err := operations.ValidateInput(req.Variables)
	if err != nil {
		env = envelope.Build("", err)
	} else {
		content, sendErr := h.Upstream.Send(c.Request().Context(), input)
		env = envelope.Build(content, sendErr)
	}

	outcome := "ok"
	if env.Error != nil {
		outcome = "error"
	}
	metrics.OperationCount.WithLabelValues(operations.SendMessage.String(), outcome).Inc()

	if h.Trail != nil {
		h.Trail.Record(c.Request().Context(), operations.SendMessage.String(), env)
	}

	return c.JSON(http.StatusOK, shared.SendMessageResponse{Data: shared.SendMessageData{SendMessage: env}})
}

// MethodNotAllowed answers the relay path for every verb except POST and
// OPTIONS.
func MethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, shared.NewErrorsResponse("only POST supported"))
}
