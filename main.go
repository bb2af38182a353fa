package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"notekeep/config"
	"notekeep/db"
	"notekeep/handlers"
	appmw "notekeep/middleware"
	"notekeep/service"
	"notekeep/store"
	"notekeep/token"
)

func main() {
	// .env is optional; without one the process environment is used as-is.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	database, err := db.Open(cfg.DBDriver, cfg.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer database.Close()

	if err := db.SeedCategories(database); err != nil {
		logger.Fatal().Err(err).Msg("category seeding failed")
	}

	st := store.New(database)
	tokens := token.NewService(cfg.JWTSecret)
	api := handlers.NewAPI(
		service.NewAuth(st, tokens, logger),
		service.NewNotes(st, logger),
		service.NewCategories(st),
		logger,
	)

	r := newRouter(api, tokens, logger, cfg.PublicDir)

	logger.Info().Str("addr", cfg.Addr).Str("db", cfg.DBDriver).Msg("server listening")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(api *handlers.API, tokens *token.Service, logger zerolog.Logger, publicDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(appmw.RequestLogger(logger))
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' https://www.gstatic.com;")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/api/register", api.Register)
	r.Post("/api/login", api.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(tokens))
		r.Get("/api/categories", api.GetCategories)
		r.Get("/api/notes", api.GetNotes)
		r.Post("/api/notes", api.CreateNote)
		r.Put("/api/notes/{id}", api.UpdateNote)
		r.Patch("/api/notes/{id}/archive", api.ToggleArchive)
		r.Delete("/api/notes/{id}", api.DeleteNote)
	})

	if fi, err := os.Stat(publicDir); err == nil && fi.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(publicDir)))
	}

	return r
}
