package shared

// GraphRequest is the inbound relay payload. Query is free text inspected by
// the operation classifier, never parsed as a real grammar.
type GraphRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type GraphError struct {
	Message string `json:"message"`
}

// ErrorsResponse is the top-level error shape used for transport-level
// failures and unrecognized operations.
type ErrorsResponse struct {
	Errors []GraphError `json:"errors"`
}

func NewErrorsResponse(message string) ErrorsResponse {
	return ErrorsResponse{Errors: []GraphError{{Message: message}}}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the upstream chat-completion request body.
type ChatRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type ChatResponse struct {
	Choices []ChatChoice `json:"choices"`
}

// SendMessageResult is the uniform envelope for every sendMessage outcome.
// Exactly one of Result and Error is set.
type SendMessageResult struct {
	Result    string  `json:"result"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Error     *string `json:"error"`
}

type StatusData struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Data StatusData `json:"data"`
}

type SendMessageData struct {
	SendMessage SendMessageResult `json:"sendMessage"`
}

type SendMessageResponse struct {
	Data SendMessageData `json:"data"`
}
