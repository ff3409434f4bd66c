package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"relay-api/internal/middleware"
	"relay-api/internal/routers"
	"relay-api/internal/shared"
	"relay-api/internal/trail"
	"relay-api/internal/upstream"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/manifold-inc/manifold-sdk/lib/eflag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Flags / ENV Variables
	upstreamAPIKey := flag.String("upstream-api-key", "", "Upstream provider API key")
	upstreamURL := flag.String("upstream-url", shared.DefaultUpstreamURL, "Upstream chat completions URL")
	model := flag.String("model", shared.DefaultModel, "Upstream model identifier")
	statusMessage := flag.String("status-message", shared.DefaultStatusMessage, "Status query ready message")
	metricsAPIKey := flag.String("metrics-api-key", "", "Metrics api key")
	redisAddr := flag.String("redis-addr", "", "Redis host:port, enables trail recording")
	debug := flag.Bool("debug", false, "Debug enabled")

	err := eflag.SetFlagsFromEnvironment()
	if err != nil {
		panic(err)
	}
	flag.Parse()

	if *upstreamAPIKey == "" {
		panic("upstream api key is required")
	}

	var logger *zap.Logger
	if !*debug {
		logger, err = zap.NewProduction()
		if err != nil {
			panic("Failed init logger")
		}
	}
	if *debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic("Failed init logger")
		}
	}
	log := logger.Sugar()

	// Trail recording is optional, the relay itself holds no state
	var redisClient *redis.Client
	var recorder *trail.Recorder
	if *redisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     *redisAddr,
			Password: "",
			DB:       0,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			panic(fmt.Sprintf("failed ping to redis db: %s", err))
		}
		recorder = trail.NewRecorder(redisClient, log)
		log.Info("Trail recording enabled")
	}
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	e := echo.New()
	e.GET(("/ping"), func(c echo.Context) error {
		return c.String(200, "")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey, err := shared.ExtractAPIKey(c)
			if err != nil {
				return c.String(401, "Missing or invalid API key")
			}

			if apiKey != *metricsAPIKey {
				return c.String(401, "Unauthorized API key")
			}
			return next(c)
		}
	})
	base := e.Group("")
	base.Use(middleware.NewCORSMiddleware())
	base.Use(middleware.NewRecoverMiddleware(log))
	base.Use(middleware.NewTrackMiddleware(log))

	client := upstream.NewClient(*upstreamAPIKey, *upstreamURL, *model, log)

	// Register routes
	routers.RegisterRelayRoutes(base, client, recorder, *statusMessage)
	routers.RegisterAdminRoutes(base, recorder, *metricsAPIKey)

	go func() {
		if err := e.Start(":80"); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shared.DefaultShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
