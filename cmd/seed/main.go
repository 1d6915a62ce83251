// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"chopbox/internal/config"
	"chopbox/internal/database"
	"chopbox/internal/seed"
)

func main() {
	users := flag.Int("users", 20, "number of users to create")
	chops := flag.Int("chops", 8, "chops per user")
	comments := flag.Int("comments", 2, "comments per chop")
	followRatio := flag.Float64("follow-ratio", 0.25, "probability of a follow edge between any two users")
	fixture := flag.String("fixture", "", "path to a YAML fixture file (skips random seeding)")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *clean {
		if err := seed.Clear(db); err != nil {
			log.Fatalf("Failed to clear existing data: %v", err)
		}
	}

	if *fixture != "" {
		if err := seed.LoadFixture(db, *fixture); err != nil {
			log.Fatalf("Failed to load fixture: %v", err)
		}
		log.Printf("Fixture %s applied", *fixture)
		return
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.ChopsPerUser = *chops
	opts.CommentsPerChop = *comments
	opts.FollowRatio = *followRatio

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
