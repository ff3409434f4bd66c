package shared

import "time"

// HTTP Client Configuration
const (
	DefaultHTTPTimeout     = 180 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Upstream Configuration
const (
	DefaultUpstreamURL = "https://api.openai.com/v1/chat/completions"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultMaxTokens   = 500
)

// Trail Configuration
const (
	TrailTTL = 24 * time.Hour
)

// API Configuration
const (
	DefaultStatusMessage = "Relay is up and ready"
	APIKeyLength         = 32
)
