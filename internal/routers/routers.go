// Package routers
package routers

import (
	"relay-api/internal/handlers/relay"
	"relay-api/internal/trail"

	"github.com/labstack/echo/v4"
)

// RegisterRelayRoutes wires the relay endpoint. OPTIONS is answered by the
// CORS middleware; every other non-POST verb gets the 405 error shape. Any
// covers the whole verb matrix, TRACE and CONNECT included, and the POST
// registration afterwards takes that one method back.
func RegisterRelayRoutes(e *echo.Group, upstream relay.Sender, recorder *trail.Recorder, statusMessage string) {
	h := relay.NewHandler(upstream, recorder, statusMessage)

	e.Any("/graphql", relay.MethodNotAllowed)
	e.POST("/graphql", h.Relay)
}
