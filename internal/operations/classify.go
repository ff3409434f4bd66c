// Package operations classifies and validates relay operations
package operations

import "strings"

type Kind int

const (
	StatusQuery Kind = iota
	SendMessage
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case StatusQuery:
		return "status"
	case SendMessage:
		return "sendMessage"
	}
	return "unsupported"
}

// Classify inspects the raw operation text and picks the first matching
// operation. This is a marker heuristic, not a grammar: StatusQuery is always
// tested before SendMessage, and that order is load-bearing when a descriptor
// carries markers for both.
func Classify(descriptor string) Kind {
	q := strings.ToLower(descriptor)

	if strings.Contains(q, "query") && strings.Contains(q, "status") {
		return StatusQuery
	}
	if strings.Contains(q, "mutation") && strings.Contains(q, "sendmessage") {
		return SendMessage
	}
	return Unsupported
}
