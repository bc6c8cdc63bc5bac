package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/belajar-nihongo/nihongo-cms/internal/config"
	"github.com/belajar-nihongo/nihongo-cms/internal/db"

	"github.com/joho/godotenv"
)

// Applies pending schema migrations. Run before starting cmd/server;
// re-running against an up-to-date database is a no-op.
func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	status := flag.Bool("status", false, "print current and target schema versions, apply nothing")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN, 1)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	if *status {
		current, err := db.CurrentVersion(ctx, dbh)
		if err != nil {
			log.Fatalf("read schema version: %v", err)
		}
		log.Printf("schema version %d, target %d", current, db.LatestVersion())
		return
	}

	if err := db.Migrate(ctx, dbh, db.Driver(cfg.DBDriver)); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	current, err := db.CurrentVersion(ctx, dbh)
	if err != nil {
		log.Fatalf("read schema version: %v", err)
	}
	log.Printf("schema up to date at version %d", current)
}
