package seed

import (
	"fmt"
	"log"

	"sewsmart/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var (
	categories = []string{
		"dresses", "jackets", "skirts", "trousers", "shirts",
		"quilting", "accessories", "kidswear", "upcycling", "costumes",
	}

	tagPool = []string{
		"linen", "cotton", "wool", "silk", "denim", "jersey", "corduroy",
		"summer", "winter", "vintage", "minimalist", "handmade", "beginner",
		"advanced", "zero-waste", "drafted", "fitted", "oversized",
	}

	fabrics = []string{
		"Linen", "Cotton", "Wool", "Silk", "Denim", "Jersey", "Corduroy",
		"Velvet", "Chambray", "Flannel",
	}

	garments = []string{
		"wrap dress", "bomber jacket", "pleated skirt", "wide-leg trouser",
		"camp shirt", "quilted coat", "tote bag", "jumpsuit", "pinafore",
		"shift dress",
	}
)

// Seed populates the database with demo data: users, image posts with likes
// and comments, and shopping state (carts, wishlists, order history) for a
// subset of users.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.r.Intn(len(users))]
		post, err := f.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create posts: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("%d posts created", len(posts))

	if err := seedEngagement(f, users, posts); err != nil {
		return fmt.Errorf("failed to seed engagement: %w", err)
	}

	if err := seedCommerce(f, users); err != nil {
		return fmt.Errorf("failed to seed commerce data: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedEngagement sprinkles likes and comments across the feed.
func seedEngagement(f *Factory, users []*models.User, posts []*models.Post) error {
	likes, comments := 0, 0
	for _, post := range posts {
		for _, user := range users {
			if f.r.Intn(100) < 20 {
				if err := f.CreateLike(user, post); err != nil {
					return err
				}
				likes++
			}
			if f.r.Intn(100) < 5 {
				if _, err := f.CreateComment(user, post); err != nil {
					return err
				}
				comments++
			}
		}
	}
	log.Printf("%d likes and %d comments created", likes, comments)
	return nil
}

// seedCommerce gives roughly half the users a cart, a wishlist, and some
// order history.
func seedCommerce(f *Factory, users []*models.User) error {
	orderStatuses := []models.OrderStatus{
		models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered,
	}

	carts, lists, orders := 0, 0, 0
	for _, user := range users {
		if f.r.Intn(100) < 50 {
			if _, err := f.CreateCartWithItems(user, f.r.Intn(3)+1); err != nil {
				return err
			}
			carts++
		}
		if f.r.Intn(100) < 50 {
			if _, err := f.CreateWishlistWithItems(user, f.r.Intn(4)+1); err != nil {
				return err
			}
			lists++
		}
		for i := f.r.Intn(3); i > 0; i-- {
			status := orderStatuses[f.r.Intn(len(orderStatuses))]
			if _, err := f.CreateOrder(user, f.r.Intn(3)+1, status); err != nil {
				return err
			}
			orders++
		}
	}
	log.Printf("%d carts, %d wishlists, %d orders created", carts, lists, orders)
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE order_items, orders, wishlist_items, wishlists,
		cart_items, carts, likes, comments, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
