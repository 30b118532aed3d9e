package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/saibhanage/me-api-playground/config"
	"github.com/saibhanage/me-api-playground/database"
	"github.com/saibhanage/me-api-playground/ratelimit"
	"github.com/saibhanage/me-api-playground/web"
)

const maxRequestBodyBytes = 10 << 20 // 10MB

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database, c config.Config, limiter *ratelimit.Store) (Server, error) {
	port := c.String("PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time for the health endpoint's uptime field
	startupTime := time.Now()

	router := newRouter(db, c, limiter, startupTime)

	readTimeout := time.Duration(c.Int("READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(c.Int("WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(c.Int("IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

func newRouter(db database.Database, c config.Config, limiter *ratelimit.Store, startupTime time.Time) *chi.Mux {
	devMode := strings.ToLower(c.String("GO_ENV", "development")) == "development"

	chiRouter := chi.NewRouter()
	chiRouter.Use(Recoverer(NewResponder(log.Logger, devMode)))
	chiRouter.Use(RequestLogger)
	chiRouter.Use(MaxBodyBytes(maxRequestBodyBytes))

	// CORS restricted to the one configured front-end origin
	frontendURL := c.String("FRONTEND_URL", "http://localhost:5173")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if limiter != nil {
		chiRouter.Use(RateLimit(limiter, NewResponder(log.Logger, devMode)))
	}

	handlers := initializeHandlers(db, devMode, startupTime)
	gate := newAuthGate(
		c.String("BASIC_AUTH_USERNAME", "admin"),
		c.String("BASIC_AUTH_PASSWORD", "admin123"),
		devMode,
	)

	setupRoutes(chiRouter, handlers, gate)

	// Embedded single-page client
	chiRouter.Get("/app", http.RedirectHandler("/app/", http.StatusMovedPermanently).ServeHTTP)
	chiRouter.Handle("/app/*", web.Handler())

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
