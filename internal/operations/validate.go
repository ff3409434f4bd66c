package operations

import (
	"strings"

	"relay-api/internal/shared"
)

// ValidateInput pulls the sendMessage input out of the request variables and
// rejects absent or whitespace-only values before any upstream quota is
// spent. The caller's text is returned verbatim; trimming is only used for
// the emptiness check.
func ValidateInput(variables map[string]any) (string, error) {
	input := shared.GetString(variables, "input")
	if strings.TrimSpace(input) == "" {
		return "", shared.ErrEmptyInput
	}
	return input, nil
}
