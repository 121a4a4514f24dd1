// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"sewsmart/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user. The external id mimics
// the identity provider's subject format.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		ExternalID: fmt.Sprintf("user_%s", gofakeit.LetterN(24)),
		Username:   fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 999)),
		Name:       gofakeit.Name(),
		Email:      gofakeit.Email(),
		Avatar:     fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Bio:        gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given user with a
// realistic created_at spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	category := categories[f.r.Intn(len(categories))]
	post := &models.Post{
		UserID:      user.ExternalID,
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Description: gofakeit.Sentence(12),
		Category:    category,
		Tags:        f.pickTags(category),
	}

	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment on the post authored by the user.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ExternalID,
		Content: gofakeit.Sentence(8),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from user on post. Duplicate likes are absorbed
// by the unique index.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	return f.db.Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (post_id, user_id) DO NOTHING`,
		user.ExternalID, post.ID,
	).Error
}

// CreateCartWithItems persists a cart for the user with n random line items.
func (f *Factory) CreateCartWithItems(user *models.User, n int) (*models.Cart, error) {
	cart := &models.Cart{UserID: user.ExternalID}
	if err := f.db.Create(cart).Error; err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		item := f.randomCartItem(cart.ID)
		if err := f.db.Create(item).Error; err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// CreateWishlistWithItems persists a wishlist for the user with n saved designs.
func (f *Factory) CreateWishlistWithItems(user *models.User, n int) (*models.Wishlist, error) {
	list := &models.Wishlist{UserID: user.ExternalID}
	if err := f.db.Create(list).Error; err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		item := &models.WishlistItem{
			WishlistID: list.ID,
			DesignID:   fmt.Sprintf("design_%s", gofakeit.LetterN(12)),
			DesignerID: fmt.Sprintf("user_%s", gofakeit.LetterN(24)),
			Title:      f.designTitle(),
			Price:      gofakeit.Price(5, 120),
			Image:      fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
		}
		if err := f.db.Create(item).Error; err != nil {
			return nil, err
		}
	}
	return list, nil
}

// CreateOrder persists a completed checkout with n line items and a
// server-computed total.
func (f *Factory) CreateOrder(user *models.User, n int, status models.OrderStatus) (*models.Order, error) {
	order := &models.Order{
		UserID: user.ExternalID,
		Status: status,
	}
	for i := 0; i < n; i++ {
		line := f.randomCartItem(0)
		order.Items = append(order.Items, models.OrderItem{
			DesignID:   line.DesignID,
			DesignerID: line.DesignerID,
			Title:      line.Title,
			Price:      line.Price,
			Image:      line.Image,
			Quantity:   line.Quantity,
		})
		order.TotalAmount += line.Price * float64(line.Quantity)
	}
	if err := f.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (f *Factory) randomCartItem(cartID uint) *models.CartItem {
	return &models.CartItem{
		CartID:     cartID,
		DesignID:   fmt.Sprintf("design_%s", gofakeit.LetterN(12)),
		DesignerID: fmt.Sprintf("user_%s", gofakeit.LetterN(24)),
		Title:      f.designTitle(),
		Price:      gofakeit.Price(5, 120),
		Image:      fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
		Quantity:   f.r.Intn(3) + 1,
	}
}

func (f *Factory) designTitle() string {
	fabric := fabrics[f.r.Intn(len(fabrics))]
	garment := garments[f.r.Intn(len(garments))]
	return fmt.Sprintf("%s %s pattern", fabric, garment)
}

func (f *Factory) pickTags(category string) models.TagList {
	tags := models.TagList{category}
	pool := append([]string(nil), tagPool...)
	count := f.r.Intn(3) + 1
	for i := 0; i < count && len(pool) > 0; i++ {
		j := f.r.Intn(len(pool))
		tags = append(tags, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return tags
}
