// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"amity/internal/config"
	"amity/internal/database"
	"amity/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, clean=%v\n", *numUsers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if _, err := s.SeedSocialMesh(*numUsers); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. Database populated with demo users and relationships.")
}
