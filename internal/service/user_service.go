package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"chopbox/internal/models"
	"chopbox/internal/repository"
)

// UserService handles profile operations.
type UserService struct {
	userRepo repository.UserRepository
}

// CompleteProfileInput carries the fields collected on the first-profile form.
type CompleteProfileInput struct {
	FirstName string
	LastName  string
	Location  string
	About     string
	Gender    string
	BestFood  string
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// CompleteProfile saves the profile fields and flips ProfileComplete.
// The flag only ever transitions false -> true; later edits keep it set.
// Users without an avatar get a Gravatar fallback derived from their email.
func (s *UserService) CompleteProfile(ctx context.Context, userID uint, in CompleteProfileInput) (*models.User, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, models.NewValidationError("First name and last name are required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Location = strings.TrimSpace(in.Location)
	user.About = strings.TrimSpace(in.About)
	user.Gender = strings.TrimSpace(in.Gender)
	user.BestFood = strings.TrimSpace(in.BestFood)
	user.ProfileComplete = true

	if user.Avatar == "" {
		user.Avatar = GravatarURL(user.Email)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GravatarURL derives the Gravatar image URL for an email address.
func GravatarURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=mm&s=120", hash)
}
