// File: /models/friendship.go
package models

import (
	"time"
)

// Friendship statuses. The request flow auto-accepts, so pending/rejected
// rows are modeled but never written by the running system.
const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
	FriendshipStatusRejected = "rejected"
)

// Friendship is stored directionally (user_id sent the request) but is
// symmetric in meaning: at most one row exists per unordered pair, so both
// directions must be checked before insert.
type Friendship struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	UserID       string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_friendships_pair;index"`
	FriendID     string    `json:"friend_id" gorm:"not null;size:191;uniqueIndex:uk_friendships_pair;index"`
	Status       string    `json:"status" gorm:"not null;size:20;index"`
	MutualEvents int       `json:"mutual_events" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
}

// CounterpartOf returns the other side of the relation, or "" if userID is
// not part of it.
func (f *Friendship) CounterpartOf(userID string) string {
	switch userID {
	case f.UserID:
		return f.FriendID
	case f.FriendID:
		return f.UserID
	}
	return ""
}

// FriendInfo is the public projection of a friend returned by the friends
// and suggestions endpoints.
type FriendInfo struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Photo        *string     `json:"photo"`
	Location     string      `json:"location"`
	Sports       StringSlice `json:"sports"`
	Age          int         `json:"age"`
	Status       string      `json:"status"`
	MutualEvents int         `json:"mutual_events"`
}
