package seed

import (
	"fmt"
	"log"

	"chopbox/internal/models"

	"gorm.io/gorm"
)

// Seed populates the database with demo users, a follow mesh, chops,
// comments, and favourites. The volumes come from opts.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database: %d users, %d chops each...", opts.Users, opts.ChopsPerUser)

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	// Follow mesh: each ordered pair gets an edge with probability FollowRatio.
	follows := 0
	for _, follower := range users {
		for _, followee := range users {
			if follower.ID == followee.ID {
				continue
			}
			if factory.rand.Float64() >= opts.FollowRatio {
				continue
			}
			if err := factory.CreateFollow(follower, followee); err != nil {
				return fmt.Errorf("failed to create follow: %w", err)
			}
			follows++
		}
	}
	log.Printf("created %d follow edges", follows)

	var chops []*models.Chop
	for _, user := range users {
		for i := 0; i < opts.ChopsPerUser; i++ {
			chops = append(chops, factory.BuildChop(user))
		}
	}
	if err := factory.CreateChopsBatch(chops); err != nil {
		return fmt.Errorf("failed to create chops: %w", err)
	}
	log.Printf("created %d chops", len(chops))

	comments := 0
	for _, chop := range chops {
		for i := 0; i < opts.CommentsPerChop; i++ {
			author := users[factory.rand.Intn(len(users))]
			if _, err := factory.CreateComment(author, chop); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("created %d comments", comments)

	// Scatter favourites; skip pairs the random walk already visited so the
	// unique index never trips.
	favourites := 0
	seen := make(map[[2]uint]struct{})
	for i := 0; i < len(chops)*2; i++ {
		user := users[factory.rand.Intn(len(users))]
		chop := chops[factory.rand.Intn(len(chops))]
		key := [2]uint{user.ID, chop.ID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if err := factory.CreateFavourite(user, chop); err != nil {
			return fmt.Errorf("failed to create favourite: %w", err)
		}
		favourites++
	}
	log.Printf("created %d favourites", favourites)

	log.Println("Seeding complete")
	return nil
}

// Clear removes all seeded data. Order respects foreign keys.
func Clear(db *gorm.DB) error {
	tables := []string{"favourites", "comments", "chops", "follows", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
