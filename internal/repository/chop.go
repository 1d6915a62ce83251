package repository

import (
	"context"
	"errors"
	"time"

	"chopbox/internal/cache"
	"chopbox/internal/models"

	"gorm.io/gorm"
)

// ChopRepository defines the interface for chop data operations
type ChopRepository interface {
	Create(ctx context.Context, chop *models.Chop) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Chop, error)
	GetByAuthors(ctx context.Context, authorIDs []uint, currentUserID uint, limit, offset int) ([]*models.Chop, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Chop, error)
	CountByAuthor(ctx context.Context, userID uint) (int64, error)
	Favourite(ctx context.Context, userID, chopID uint) (applied bool, likes int, err error)
	IsFavourited(ctx context.Context, userID, chopID uint) (bool, error)
}

// chopRepository implements ChopRepository
type chopRepository struct {
	db *gorm.DB
}

// NewChopRepository creates a new chop repository
func NewChopRepository(db *gorm.DB) ChopRepository {
	return &chopRepository{db: db}
}

func (r *chopRepository) Create(ctx context.Context, chop *models.Chop) error {
	if err := r.db.WithContext(ctx).Create(chop).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx, chop.UserID)
	cache.InvalidateLeaderboard(ctx, 10)
	return nil
}

func (r *chopRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Chop, error) {
	var chop models.Chop

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.ChopKey(id), &chop, cache.ChopTTL, func() error {
			return r.applyChopDetails(r.db.WithContext(ctx), 0).
				Preload("User").
				First(&chop, id).Error
		})
	} else {
		err = r.applyChopDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			First(&chop, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Chop", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &chop, nil
}

// GetByAuthors fetches every chop authored by any of authorIDs, ordered by
// descending creation time. Chops sharing a timestamp order by descending ID,
// so the ordering is total and the most recently inserted chop wins.
func (r *chopRepository) GetByAuthors(ctx context.Context, authorIDs []uint, currentUserID uint, limit, offset int) ([]*models.Chop, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var chops []*models.Chop
	err := r.applyChopDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("chops.user_id IN ?", authorIDs).
		Order("chops.created_at DESC, chops.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&chops).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return chops, nil
}

func (r *chopRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Chop, error) {
	var chops []*models.Chop
	err := r.applyChopDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("chops.user_id = ?", userID).
		Order("chops.created_at DESC, chops.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&chops).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return chops, nil
}

func (r *chopRepository) CountByAuthor(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Chop{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// applyChopDetails adds subqueries to fetch the comment count and the
// requesting user's favourite status in a single query.
func (r *chopRepository) applyChopDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "chops.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.chop_id = chops.id AND comments.deleted_at IS NULL) as comments_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM favourites WHERE favourites.chop_id = chops.id AND favourites.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery)
}

// Favourite records userID's like on chopID at most once. The insert and the
// counter increment run in one transaction: the counter moves if and only if
// the insert took effect, so concurrent first-time favourites cannot lose
// updates and repeat calls cannot double count. Returns whether the counter
// moved and the counter value after the call.
func (r *chopRepository) Favourite(ctx context.Context, userID, chopID uint) (bool, int, error) {
	var applied bool
	var likes int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			`INSERT INTO favourites (user_id, chop_id, created_at)
			 VALUES (?, ?, ?)
			 ON CONFLICT (user_id, chop_id) DO NOTHING`,
			userID, chopID, time.Now().UTC(),
		)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			applied = true
			if err := tx.Model(&models.Chop{}).
				Where("id = ?", chopID).
				UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Chop{}).
			Select("likes").
			Where("id = ?", chopID).
			Scan(&likes).Error
	})
	if err != nil {
		return false, 0, models.NewInternalError(err)
	}

	cache.InvalidateChop(ctx, chopID)
	// The viewer's cached feed carries their liked flag for this chop.
	cache.InvalidateFeed(ctx, userID)
	return applied, likes, nil
}

func (r *chopRepository) IsFavourited(ctx context.Context, userID, chopID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favourite{}).
		Where("user_id = ? AND chop_id = ?", userID, chopID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
