package shared

import (
	"errors"
	"fmt"
)

// RequestError is used when we want a specific error message and StatusCode.
// For the relay endpoint the status code of an upstream rejection is the only
// detail that may be surfaced to the caller; the rest of the error chain is
// for logging.
type RequestError struct {
	StatusCode int
	Err        error
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status %d: err %v", r.StatusCode, r.Err)
}

var (
	ErrMissingAuth   = &RequestError{Err: errors.New("missing authorization header"), StatusCode: 401}
	ErrInvalidFormat = &RequestError{Err: errors.New("invalid authentication format"), StatusCode: 401}
	ErrInvalidKeyLen = &RequestError{Err: errors.New("invalid API key length"), StatusCode: 401}
	ErrUnauthorized  = &RequestError{Err: errors.New("unauthorized"), StatusCode: 401}

	ErrEmptyInput       = errors.New("input is required")
	ErrNoChoices        = errors.New("upstream returned no choices")
	ErrNoContent        = errors.New("upstream returned empty content")
	ErrUnsupportedQuery = errors.New("unsupported query")

	ErrInternalServerError = &RequestError{Err: errors.New("internal error"), StatusCode: 500}

	ErrFailedUpstreamReq     = &MetricsError{Msg: "failed to send http request to upstream", Code: "upstream_http_err"}
	ErrUpstreamBadStatus     = &MetricsError{Msg: "upstream responded with non-2xx", Code: "upstream_status_err"}
	ErrFailedReadingResponse = &MetricsError{Msg: "failed to read upstream response", Code: "upstream_response_err"}
	ErrFailedDecodingBody    = &MetricsError{Msg: "failed to decode upstream response", Code: "upstream_decode_err"}
	ErrEmptyChoices          = &MetricsError{Msg: "upstream returned zero choices", Code: "upstream_empty_err"}
	ErrBlankContent          = &MetricsError{Msg: "upstream returned empty completion content", Code: "upstream_content_err"}
)

type MetricsError struct {
	Msg  string
	Code string
}

func (m *MetricsError) Error() string {
	return m.String()
}

func (m *MetricsError) String() string {
	return m.Msg
}
