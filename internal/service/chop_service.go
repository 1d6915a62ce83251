package service

import (
	"context"
	"strings"

	"chopbox/internal/models"
	"chopbox/internal/repository"
)

const maxChopLen = 500

// ChopService handles chop creation and retrieval.
type ChopService struct {
	chopRepo repository.ChopRepository
}

// CreateChopInput carries the fields for a new chop.
type CreateChopInput struct {
	UserID uint
	Body   string
}

// NewChopService creates a new chop service
func NewChopService(chopRepo repository.ChopRepository) *ChopService {
	return &ChopService{chopRepo: chopRepo}
}

func (s *ChopService) CreateChop(ctx context.Context, in CreateChopInput) (*models.Chop, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Chop body is required")
	}
	if len(body) > maxChopLen {
		return nil, models.NewValidationError("Chop too long (max 500 characters)")
	}

	chop := &models.Chop{
		Body:   body,
		UserID: in.UserID,
	}
	if err := s.chopRepo.Create(ctx, chop); err != nil {
		return nil, err
	}

	// Reload with author and computed fields for the response
	return s.chopRepo.GetByID(ctx, chop.ID, in.UserID)
}

func (s *ChopService) GetChop(ctx context.Context, id uint, currentUserID uint) (*models.Chop, error) {
	return s.chopRepo.GetByID(ctx, id, currentUserID)
}

func (s *ChopService) GetUserChops(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Chop, error) {
	return s.chopRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}
