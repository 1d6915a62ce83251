package seed

import (
	"fmt"
	"os"

	"chopbox/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture describes a deterministic dataset loaded from a YAML file.
// Unlike the random seeder, fixtures create exactly the rows listed, which
// makes them suitable for demos and reproducible environments.
type Fixture struct {
	Users []FixtureUser `yaml:"users"`
}

// FixtureUser is one user entry in a fixture file. Follows and chops are
// declared inline under the user that owns them.
type FixtureUser struct {
	Username string   `yaml:"username"`
	Email    string   `yaml:"email"`
	Password string   `yaml:"password"`
	Follows  []string `yaml:"follows"` // usernames this user follows
	Chops    []string `yaml:"chops"`   // chop bodies, oldest first
}

// LoadFixture reads a fixture file and applies it to the database.
func LoadFixture(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path) // #nosec G304: operator-supplied fixture path
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("failed to parse fixture file: %w", err)
	}

	return ApplyFixture(db, &fixture)
}

// ApplyFixture creates the fixture's users, chops, and follow edges.
// Users are created first so follow targets resolve regardless of order.
func ApplyFixture(db *gorm.DB, fixture *Fixture) error {
	byUsername := make(map[string]*models.User, len(fixture.Users))

	for _, entry := range fixture.Users {
		password := entry.Password
		if password == "" {
			password = "password123"
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &models.User{
			Username: entry.Username,
			Email:    entry.Email,
			Password: string(hashed),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create fixture user %q: %w", entry.Username, err)
		}
		byUsername[entry.Username] = user

		for _, body := range entry.Chops {
			chop := &models.Chop{Body: body, UserID: user.ID}
			if err := db.Create(chop).Error; err != nil {
				return fmt.Errorf("failed to create fixture chop for %q: %w", entry.Username, err)
			}
		}
	}

	for _, entry := range fixture.Users {
		follower := byUsername[entry.Username]
		for _, followeeName := range entry.Follows {
			followee, ok := byUsername[followeeName]
			if !ok {
				return fmt.Errorf("fixture user %q follows unknown user %q", entry.Username, followeeName)
			}
			follow := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := db.Create(follow).Error; err != nil {
				return fmt.Errorf("failed to create fixture follow %s -> %s: %w", entry.Username, followeeName, err)
			}
		}
	}

	return nil
}
