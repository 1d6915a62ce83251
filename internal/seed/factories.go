// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"chopbox/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls seed volume and behavior.
type Options struct {
	Users           int
	ChopsPerUser    int
	CommentsPerChop int
	FollowRatio     float64 // probability that any (a, b) pair gets a follow edge
	MaxDays         int     // created_at spread
	SkipBcrypt      bool    // dev fast mode: store a plain-text password
}

// DefaultOptions returns a small but realistic demo dataset shape.
func DefaultOptions() Options {
	return Options{
		Users:           20,
		ChopsPerUser:    8,
		CommentsPerChop: 2,
		FollowRatio:     0.25,
		MaxDays:         90,
	}
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, opts: opts, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Location:  gofakeit.City(),
		About:     gofakeit.Sentence(10),
		BestFood:  gofakeit.Dinner(),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}
	user.ProfileComplete = true

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildChop constructs a chop with a realistic created_at spread but does
// not persist it. Useful for batching.
func (f *Factory) BuildChop(user *models.User, overrides ...func(*models.Chop)) *models.Chop {
	chop := &models.Chop{
		Body:   gofakeit.Sentence(f.rand.Intn(12) + 3),
		UserID: user.ID,
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	chop.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(chop)
	}
	return chop
}

// CreateChop constructs and persists a sample `models.Chop` for the given user.
func (f *Factory) CreateChop(user *models.User, overrides ...func(*models.Chop)) (*models.Chop, error) {
	chop := f.BuildChop(user, overrides...)
	if err := f.db.Create(chop).Error; err != nil {
		return nil, err
	}
	return chop, nil
}

// CreateChopsBatch persists multiple chops in a single DB call when possible.
func (f *Factory) CreateChopsBatch(chops []*models.Chop) error {
	if len(chops) == 0 {
		return nil
	}
	return f.db.Create(&chops).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided chop authored by the provided user.
func (f *Factory) CreateComment(user *models.User, chop *models.Chop, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Body:   gofakeit.Sentence(8),
		UserID: user.ID,
		ChopID: chop.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFavourite persists a favourite from `user` on `chop` and bumps the
// chop's counter, mirroring what the favourite transaction does at runtime.
func (f *Factory) CreateFavourite(user *models.User, chop *models.Chop) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		favourite := &models.Favourite{
			UserID: user.ID,
			ChopID: chop.ID,
		}
		if err := tx.Create(favourite).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chop{}).
			Where("id = ?", chop.ID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
	})
}

// CreateFollow persists a follow edge from follower to followee.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	follow := &models.Follow{
		FollowerID: follower.ID,
		FolloweeID: followee.ID,
	}
	return f.db.Create(follow).Error
}
