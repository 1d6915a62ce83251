package service

import (
	"context"

	"chopbox/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn               func(context.Context, *models.User) error
	getByIDFn              func(context.Context, uint) (*models.User, error)
	getByEmailFn           func(context.Context, string) (*models.User, error)
	getByEmailOrUsernameFn func(context.Context, string) (*models.User, error)
	getByProviderFn        func(context.Context, string, string) (*models.User, error)
	updateFn               func(context.Context, *models.User) error
	topUsersFn             func(context.Context, int) ([]*models.User, error)
	getFolloweeIDsFn       func(context.Context, uint) ([]uint, error)
	followFn               func(context.Context, uint, uint) error
	unfollowFn             func(context.Context, uint, uint) error
	isFollowingFn          func(context.Context, uint, uint) (bool, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByEmailOrUsername(ctx context.Context, identity string) (*models.User, error) {
	return s.getByEmailOrUsernameFn(ctx, identity)
}
func (s *userRepoStub) GetByProvider(ctx context.Context, provider, providerID string) (*models.User, error) {
	return s.getByProviderFn(ctx, provider, providerID)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) TopUsers(ctx context.Context, limit int) ([]*models.User, error) {
	return s.topUsersFn(ctx, limit)
}
func (s *userRepoStub) GetFolloweeIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFolloweeIDsFn(ctx, userID)
}
func (s *userRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *userRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *userRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByEmailOrUsernameFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, nil
		},
		getByProviderFn: func(_ context.Context, _, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		topUsersFn:      func(_ context.Context, _ int) ([]*models.User, error) { return nil, nil },
		getFolloweeIDsFn: func(_ context.Context, _ uint) ([]uint, error) {
			return nil, nil
		},
		followFn:      func(_ context.Context, _, _ uint) error { return nil },
		unfollowFn:    func(_ context.Context, _, _ uint) error { return nil },
		isFollowingFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// chopRepoStub is a stub for repository.ChopRepository.
type chopRepoStub struct {
	createFn        func(context.Context, *models.Chop) error
	getByIDFn       func(context.Context, uint, uint) (*models.Chop, error)
	getByAuthorsFn  func(context.Context, []uint, uint, int, int) ([]*models.Chop, error)
	getByUserIDFn   func(context.Context, uint, int, int, uint) ([]*models.Chop, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
	favouriteFn     func(context.Context, uint, uint) (bool, int, error)
	isFavouritedFn  func(context.Context, uint, uint) (bool, error)
}

func (s *chopRepoStub) Create(ctx context.Context, chop *models.Chop) error {
	return s.createFn(ctx, chop)
}
func (s *chopRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Chop, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *chopRepoStub) GetByAuthors(ctx context.Context, authorIDs []uint, currentUserID uint, limit, offset int) ([]*models.Chop, error) {
	return s.getByAuthorsFn(ctx, authorIDs, currentUserID, limit, offset)
}
func (s *chopRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Chop, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *chopRepoStub) CountByAuthor(ctx context.Context, userID uint) (int64, error) {
	return s.countByAuthorFn(ctx, userID)
}
func (s *chopRepoStub) Favourite(ctx context.Context, userID, chopID uint) (bool, int, error) {
	return s.favouriteFn(ctx, userID, chopID)
}
func (s *chopRepoStub) IsFavourited(ctx context.Context, userID, chopID uint) (bool, error) {
	return s.isFavouritedFn(ctx, userID, chopID)
}

func noopChopRepo() *chopRepoStub {
	return &chopRepoStub{
		createFn: func(_ context.Context, _ *models.Chop) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Chop, error) {
			return &models.Chop{ID: id}, nil
		},
		getByAuthorsFn: func(_ context.Context, _ []uint, _ uint, _, _ int) ([]*models.Chop, error) {
			return nil, nil
		},
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Chop, error) {
			return nil, nil
		},
		countByAuthorFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		favouriteFn:     func(_ context.Context, _, _ uint) (bool, int, error) { return false, 0, nil },
		isFavouritedFn:  func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	getByChopIDFn func(context.Context, uint, int, int) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) GetByChopID(ctx context.Context, chopID uint, limit, offset int) ([]*models.Comment, error) {
	return s.getByChopIDFn(ctx, chopID, limit, offset)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		getByChopIDFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
			return nil, nil
		},
	}
}
