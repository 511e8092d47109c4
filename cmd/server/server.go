package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wordchain/internal/config"
	"wordchain/internal/game"
	"wordchain/internal/handlers"
	localMiddleware "wordchain/internal/middleware"
	"wordchain/internal/words"
	"wordchain/internal/ws"
)

// SetupServer wires the session, hub and routes into an http.Handler.
func SetupServer(cfg *config.ServerConfig) http.Handler {
	lexicon := words.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout)

	session := game.NewSession(lexicon, game.Rules{
		StartingScore: cfg.Game.StartingScore,
		MinWordLength: cfg.Game.MinWordLength,
		SpeedBonus:    cfg.Game.SpeedBonus,
	})

	hub := ws.NewHub(session)
	h := handlers.New(hub)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(localMiddleware.SecurityHeaders())

	// No request timeout middleware: the websocket route is long-lived.
	rateLimiter := localMiddleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitBurst)
	r.Use(rateLimiter.Middleware())

	r.Get("/", h.Home)
	r.Get("/health/live", h.HealthLive)
	r.Get("/health/ready", h.HealthReady)
	r.Get("/ws", h.GameSocket)

	return r
}
