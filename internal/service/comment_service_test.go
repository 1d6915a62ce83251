package service

import (
	"context"
	"testing"
	"time"

	"chopbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment(t *testing.T) {
	t.Run("Empty Body Rejected", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), noopChopRepo())

		_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, ChopID: 1, Body: "  "})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Parent Chop Must Exist", func(t *testing.T) {
		chopRepo := noopChopRepo()
		chopRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Chop, error) {
			return nil, models.NewNotFoundError("Chop", id)
		}
		svc := NewCommentService(noopCommentRepo(), chopRepo)

		_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, ChopID: 99, Body: "hi"})
		require.Error(t, err)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("Persists And Reloads", func(t *testing.T) {
		commentRepo := noopCommentRepo()
		commentRepo.createFn = func(_ context.Context, comment *models.Comment) error {
			comment.ID = 8
			return nil
		}
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, Body: "hi", User: models.User{ID: 1, Username: "jo"}}, nil
		}
		svc := NewCommentService(commentRepo, noopChopRepo())

		comment, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, ChopID: 2, Body: " hi "})
		require.NoError(t, err)
		assert.Equal(t, uint(8), comment.ID)
		assert.Equal(t, "jo", comment.User.Username)
	})
}

func TestCommentService_GetComments_OldestFirst(t *testing.T) {
	now := time.Now()
	commentRepo := noopCommentRepo()
	commentRepo.getByChopIDFn = func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
		return []*models.Comment{
			{ID: 1, CreatedAt: now.Add(-time.Hour)},
			{ID: 2, CreatedAt: now},
		}, nil
	}
	svc := NewCommentService(commentRepo, noopChopRepo())

	comments, err := svc.GetComments(context.Background(), 1, 50, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.True(t, comments[0].CreatedAt.Before(comments[1].CreatedAt))
}
