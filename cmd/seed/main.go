// Command seed populates the database with demo users, posts, comments, and
// newsletter subscriptions for local development.
package main

import (
	"flag"
	"fmt"
	"log"

	"hoopline/internal/config"
	"hoopline/internal/database"
	"hoopline/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "number of users to create")
	numPosts := flag.Int("posts", 60, "number of blog posts to create")
	numSubs := flag.Int("subs", 40, "number of newsletter subscriptions to create")
	clean := flag.Bool("clean", false, "truncate existing data before seeding")
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
		NumPosts:    *numPosts,
		NumSubs:     *numSubs,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Print(seed.DemoCredentials())
}
