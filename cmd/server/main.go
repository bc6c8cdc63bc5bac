package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/belajar-nihongo/nihongo-cms/internal/api/http"
	"github.com/belajar-nihongo/nihongo-cms/internal/auth"
	"github.com/belajar-nihongo/nihongo-cms/internal/config"
	"github.com/belajar-nihongo/nihongo-cms/internal/content"
	"github.com/belajar-nihongo/nihongo-cms/internal/db"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN, cfg.MaxOpenConns)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	// The server never mutates schema; cmd/migrate does that out-of-band.
	if err := db.VerifySchema(ctx, dbh); err != nil {
		log.Fatalf("schema check failed: %v", err)
	}

	store := content.NewSQLStore(dbh)
	authSvc := auth.NewService(cfg.AdminUser, cfg.AdminPassHash, cfg.SessionSecret, cfg.SessionTTL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api.Mount(r, store, authSvc)

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
