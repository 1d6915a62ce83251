package service

import (
	"context"
	"strings"

	"chopbox/internal/models"
	"chopbox/internal/repository"
)

// CommentService handles comments on chops.
type CommentService struct {
	commentRepo repository.CommentRepository
	chopRepo    repository.ChopRepository
}

// CreateCommentInput carries the fields for a new comment.
type CreateCommentInput struct {
	UserID uint
	ChopID uint
	Body   string
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repository.CommentRepository, chopRepo repository.ChopRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, chopRepo: chopRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Comment body is required")
	}

	// The parent chop must exist
	if _, err := s.chopRepo.GetByID(ctx, in.ChopID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:   body,
		UserID: in.UserID,
		ChopID: in.ChopID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// GetComments lists a chop's comments oldest first.
func (s *CommentService) GetComments(ctx context.Context, chopID uint, limit, offset int) ([]*models.Comment, error) {
	if _, err := s.chopRepo.GetByID(ctx, chopID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByChopID(ctx, chopID, limit, offset)
}
