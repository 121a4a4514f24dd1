package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"sewsmart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	listFn         func(context.Context, int) ([]*models.Post, error)
	listByAuthorFn func(context.Context, string) ([]*models.Post, error)
	deleteFn       func(context.Context, uint) error
	isLikedFn      func(context.Context, string, uint) (bool, error)
	likeFn         func(context.Context, string, uint) error
	unlikeFn       func(context.Context, string, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.listFn(ctx, limit)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, userID string) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, userID)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID string, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID string, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID string, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:      func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:         func(_ context.Context, _ int) ([]*models.Post, error) { return nil, nil },
		listByAuthorFn: func(_ context.Context, _ string) ([]*models.Post, error) { return nil, nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		isLikedFn:      func(_ context.Context, _ string, _ uint) (bool, error) { return false, nil },
		likeFn:         func(_ context.Context, _ string, _ uint) error { return nil },
		unlikeFn:       func(_ context.Context, _ string, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	upsertFn                func(context.Context, *models.User) (bool, error)
	getByExternalIDFn       func(context.Context, string) (*models.User, error)
	getInfosByExternalIDsFn func(context.Context, []string) (map[string]*models.UserInfo, error)
}

func (s *userRepoStub) Upsert(ctx context.Context, user *models.User) (bool, error) {
	return s.upsertFn(ctx, user)
}
func (s *userRepoStub) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return s.getByExternalIDFn(ctx, externalID)
}
func (s *userRepoStub) GetInfosByExternalIDs(ctx context.Context, externalIDs []string) (map[string]*models.UserInfo, error) {
	return s.getInfosByExternalIDsFn(ctx, externalIDs)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		upsertFn:          func(_ context.Context, _ *models.User) (bool, error) { return true, nil },
		getByExternalIDFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getInfosByExternalIDsFn: func(_ context.Context, _ []string) (map[string]*models.UserInfo, error) {
			return map[string]*models.UserInfo{}, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn  func(context.Context, *models.Comment) error
	getByIDFn func(context.Context, uint, uint) (*models.Comment, error)
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, postID, commentID)
}
func (s *commentRepoStub) Delete(ctx context.Context, commentID uint) error {
	return s.deleteFn(ctx, commentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

// cartRepoStub is a stub for repository.CartRepository.
type cartRepoStub struct {
	getOrCreateFn        func(context.Context, string) (*models.Cart, error)
	findItemFn           func(context.Context, uint, string) (*models.CartItem, error)
	createItemFn         func(context.Context, *models.CartItem) error
	updateItemQuantityFn func(context.Context, uint, int) error
	deleteItemFn         func(context.Context, uint, string) (int64, error)
	clearItemsFn         func(context.Context, uint) error
}

func (s *cartRepoStub) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	return s.getOrCreateFn(ctx, userID)
}
func (s *cartRepoStub) FindItem(ctx context.Context, cartID uint, designID string) (*models.CartItem, error) {
	return s.findItemFn(ctx, cartID, designID)
}
func (s *cartRepoStub) CreateItem(ctx context.Context, item *models.CartItem) error {
	return s.createItemFn(ctx, item)
}
func (s *cartRepoStub) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return s.updateItemQuantityFn(ctx, itemID, quantity)
}
func (s *cartRepoStub) DeleteItem(ctx context.Context, cartID uint, designID string) (int64, error) {
	return s.deleteItemFn(ctx, cartID, designID)
}
func (s *cartRepoStub) ClearItems(ctx context.Context, cartID uint) error {
	return s.clearItemsFn(ctx, cartID)
}

func noopCartRepo() *cartRepoStub {
	return &cartRepoStub{
		getOrCreateFn: func(_ context.Context, userID string) (*models.Cart, error) {
			return &models.Cart{ID: 1, UserID: userID, Items: []models.CartItem{}}, nil
		},
		findItemFn: func(_ context.Context, _ uint, _ string) (*models.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createItemFn:         func(_ context.Context, _ *models.CartItem) error { return nil },
		updateItemQuantityFn: func(_ context.Context, _ uint, _ int) error { return nil },
		deleteItemFn:         func(_ context.Context, _ uint, _ string) (int64, error) { return 0, nil },
		clearItemsFn:         func(_ context.Context, _ uint) error { return nil },
	}
}

// wishlistRepoStub is a stub for repository.WishlistRepository.
type wishlistRepoStub struct {
	getOrCreateFn func(context.Context, string) (*models.Wishlist, error)
	addItemFn     func(context.Context, uint, *models.WishlistItem) error
	removeItemFn  func(context.Context, uint, string) (int64, error)
}

func (s *wishlistRepoStub) GetOrCreate(ctx context.Context, userID string) (*models.Wishlist, error) {
	return s.getOrCreateFn(ctx, userID)
}
func (s *wishlistRepoStub) AddItem(ctx context.Context, listID uint, item *models.WishlistItem) error {
	return s.addItemFn(ctx, listID, item)
}
func (s *wishlistRepoStub) RemoveItem(ctx context.Context, listID uint, designID string) (int64, error) {
	return s.removeItemFn(ctx, listID, designID)
}

func noopWishlistRepo() *wishlistRepoStub {
	return &wishlistRepoStub{
		getOrCreateFn: func(_ context.Context, userID string) (*models.Wishlist, error) {
			return &models.Wishlist{ID: 1, UserID: userID, Items: []models.WishlistItem{}}, nil
		},
		addItemFn:    func(_ context.Context, _ uint, _ *models.WishlistItem) error { return nil },
		removeItemFn: func(_ context.Context, _ uint, _ string) (int64, error) { return 0, nil },
	}
}

// orderRepoStub is a stub for repository.OrderRepository.
type orderRepoStub struct {
	createWithCartClearFn func(context.Context, *models.Order) error
	listByUserFn          func(context.Context, string) ([]*models.Order, error)
	getByUserAndIDFn      func(context.Context, string, uint) (*models.Order, error)
	updateStatusFn        func(context.Context, uint, models.OrderStatus) (int64, error)
}

func (s *orderRepoStub) CreateWithCartClear(ctx context.Context, order *models.Order) error {
	return s.createWithCartClearFn(ctx, order)
}
func (s *orderRepoStub) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *orderRepoStub) GetByUserAndID(ctx context.Context, userID string, orderID uint) (*models.Order, error) {
	return s.getByUserAndIDFn(ctx, userID, orderID)
}
func (s *orderRepoStub) UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) (int64, error) {
	return s.updateStatusFn(ctx, orderID, status)
}

func noopOrderRepo() *orderRepoStub {
	return &orderRepoStub{
		createWithCartClearFn: func(_ context.Context, order *models.Order) error {
			order.ID = 1
			return nil
		},
		listByUserFn:     func(_ context.Context, _ string) ([]*models.Order, error) { return nil, nil },
		getByUserAndIDFn: func(_ context.Context, _ string, _ uint) (*models.Order, error) { return &models.Order{}, nil },
		updateStatusFn:   func(_ context.Context, _ uint, _ models.OrderStatus) (int64, error) { return 1, nil },
	}
}

// storageStub is a stub for ObjectStorage.
type storageStub struct {
	uploadFn func(context.Context, string, string, io.Reader) (string, error)
	deleteFn func(context.Context, string) error
}

func (s *storageStub) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	return s.uploadFn(ctx, key, contentType, body)
}
func (s *storageStub) Delete(ctx context.Context, publicURL string) error {
	return s.deleteFn(ctx, publicURL)
}

func noopStorage() *storageStub {
	return &storageStub{
		uploadFn: func(_ context.Context, key, _ string, _ io.Reader) (string, error) {
			return "https://nyc3.digitaloceanspaces.com/sew-smart/" + key, nil
		},
		deleteFn: func(_ context.Context, _ string) error { return nil },
	}
}

// publisherStub is a stub for OrderEventPublisher.
type publisherStub struct {
	publishFn func(*models.Order) error
}

func (s *publisherStub) PublishOrderCreated(order *models.Order) error {
	return s.publishFn(order)
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertForbiddenError asserts that err is an AppError with code FORBIDDEN.
func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
