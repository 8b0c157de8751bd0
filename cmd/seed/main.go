package main

import (
	"context"
	"log"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/database/migration"
	dbpostgres "resume-match/internal/database/postgres"
	"resume-match/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migration.Run(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seeder.Default().Run(ctx, db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Printf("[seed] done")
}
