package server

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"sewsmart/internal/config"
	"sewsmart/internal/database"
	"sewsmart/internal/repository"
	"sewsmart/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testStorage is an in-memory ObjectStorage that records deletions.
type testStorage struct {
	uploaded []string
	deleted  []string
}

func (t *testStorage) Upload(_ context.Context, key, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	t.uploaded = append(t.uploaded, key)
	return "https://nyc3.digitaloceanspaces.com/sew-smart/" + key, nil
}

func (t *testStorage) Delete(_ context.Context, publicURL string) error {
	t.deleted = append(t.deleted, publicURL)
	return nil
}

// newTestServer builds a Server over a fresh in-memory SQLite database with a
// stub object store, no Redis and no broker.
func newTestServer(t *testing.T) (*Server, *testStorage) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := &testStorage{}
	cfg := &config.Config{
		Env:       "test",
		Port:      "5003",
		JWTSecret: "handler-test-secret-key-not-for-production",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	s := &Server{
		config:       cfg,
		db:           db,
		userRepo:     userRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		orderRepo:    orderRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.postService = service.NewPostService(postRepo, userRepo, store)
	s.commentService = service.NewCommentService(commentRepo, postRepo, userRepo)
	s.cartService = service.NewCartService(cartRepo)
	s.wishlistService = service.NewWishlistService(wishlistRepo)
	s.orderService = service.NewOrderService(orderRepo, nil)

	return s, store
}

// newAuthedApp returns a Fiber app whose requests act as the given user,
// bypassing token parsing. Routes are registered by each test.
func newAuthedApp(userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}
