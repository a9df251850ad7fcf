// File: /models/message.go
package models

import (
	"time"
)

// Message is a chat entry scoped to a single event. Messages are append-only
// and keep the author's name denormalized at creation time.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	EventID   string    `json:"event_id" gorm:"not null;size:191;index:idx_messages_event_created"`
	UserID    string    `json:"user_id" gorm:"not null;size:191"`
	UserName  string    `json:"user_name" gorm:"not null;size:255"`
	Message   string    `json:"message" gorm:"not null;type:text"`
	MessageDa string    `json:"message_da" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_messages_event_created"`
}
