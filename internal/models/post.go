package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// TagList stores an ordered tag sequence as a single comma-joined text
// column. Order and duplicates are preserved round-trip.
type TagList []string

// Value implements driver.Valuer.
func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

// Scan implements sql.Scanner.
func (t *TagList) Scan(value any) error {
	if value == nil {
		*t = nil
		return nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("unsupported tag list column type %T", value)
	}
	if s == "" {
		*t = nil
		return nil
	}
	*t = strings.Split(s, ",")
	return nil
}

// Post is an image post in the SewSmart feed. The Image field holds the
// public object-storage URL of the uploaded file.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	Image       string    `gorm:"not null" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `json:"category"`
	Tags        TagList   `gorm:"type:text" json:"tags"`
	Comments    []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	// Likes holds the external ids of users who liked the post; populated
	// from the likes table at read time.
	Likes []string `gorm:"-" json:"likes"`
	// User is the denormalized author, attached at read time.
	User      *UserInfo `gorm:"-" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a single entry in a post's ordered comment list.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	UserID  string `gorm:"not null" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`
	// User is the denormalized comment author, attached at read time.
	User      *UserInfo `gorm:"-" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Like records like-set membership. The composite unique index makes a
// duplicate like a no-op at the database level.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
