package routers

import (
	"context"
	"time"

	"relay-api/internal/setup"
	"relay-api/internal/shared"
	"relay-api/internal/trail"

	"github.com/labstack/echo/v4"
)

type AdminRouter struct {
	recorder *trail.Recorder
	apiKey   string
}

// RegisterAdminRoutes exposes the correlation trail lookup, gated with the
// same key as /metrics. recorder may be nil when trail recording is off.
func RegisterAdminRoutes(e *echo.Group, recorder *trail.Recorder, apiKey string) {
	ar := AdminRouter{recorder: recorder, apiKey: apiKey}
	e.GET("/admin/trail/:request_id", ar.GetTrail)
}

func (ar *AdminRouter) GetTrail(cc echo.Context) error {
	c := cc.(*setup.Context)

	apiKey, err := shared.ExtractAPIKey(c)
	if err != nil {
		return c.String(401, "Missing or invalid API key")
	}
	if ar.apiKey == "" || apiKey != ar.apiKey {
		return c.String(401, "Unauthorized API key")
	}

	if ar.recorder == nil {
		return c.JSON(404, map[string]string{"error": "trail recording disabled"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entry, err := ar.recorder.Lookup(ctx, c.Param("request_id"))
	if err != nil {
		c.Log.Errorw("Failed to read trail entry", "error", err.Error())
		return c.String(500, "Failed to read trail entry")
	}
	if entry == nil {
		return c.JSON(404, map[string]string{"error": "not found"})
	}
	return c.JSON(200, entry)
}
