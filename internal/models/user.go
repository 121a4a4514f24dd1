// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a profile in the SewSmart user directory. Profiles are
// keyed by the identity provider's subject id and are created on first sync.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"uniqueIndex;not null" json:"external_id"`
	Username   string    `gorm:"not null" json:"username"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `json:"email,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	Followers  int       `gorm:"not null;default:0" json:"followers"`
	Following  int       `gorm:"not null;default:0" json:"following"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserInfo is the denormalized author shape attached to enriched posts and
// comments at read time. It is never persisted.
type UserInfo struct {
	ExternalID string `json:"external_id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
}

// Info returns the denormalized author view of the user.
func (u *User) Info() *UserInfo {
	return &UserInfo{
		ExternalID: u.ExternalID,
		Username:   u.Username,
		Name:       u.Name,
		Avatar:     u.Avatar,
	}
}
