// Command seed populates the database with demo owners, pets, and social
// activity for local development.
package main

import (
	"flag"
	"log"

	"pawnder/internal/config"
	"pawnder/internal/database"
	"pawnder/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of owners to create")
	numLikes := flag.Int("likes", 200, "Number of like edges to attempt")
	maxDays := flag.Int("days", 30, "Spread created_at over the past N days")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumLikes:    *numLikes,
		MaxDays:     *maxDays,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
