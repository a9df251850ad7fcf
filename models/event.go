// File: /models/event.go
package models

import (
	"errors"
	"time"
)

// Event statuses
const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Membership errors returned by AddParticipant / RemoveParticipant.
var (
	ErrEventFull            = errors.New("event is full")
	ErrAlreadyJoined        = errors.New("already joined this event")
	ErrNotParticipant       = errors.New("not joined in this event")
	ErrOrganizerCannotLeave = errors.New("organizer cannot leave their own event")
)

type Event struct {
	ID                  string      `json:"id" gorm:"primaryKey;size:191"`
	Title               string      `json:"title" gorm:"not null;size:255"`
	TitleDa             string      `json:"title_da" gorm:"not null;size:255"`
	Sport               string      `json:"sport" gorm:"not null;size:50;index"`
	Date                string      `json:"date" gorm:"not null;size:10;index:idx_events_date_time"`
	Time                string      `json:"time" gorm:"not null;size:5;index:idx_events_date_time"`
	Location            string      `json:"location" gorm:"not null;size:255"`
	Address             string      `json:"address" gorm:"size:500"`
	Description         string      `json:"description" gorm:"type:text"`
	DescriptionDa       string      `json:"description_da" gorm:"type:text"`
	MaxParticipants     int         `json:"max_participants" gorm:"not null"`
	SkillLevel          string      `json:"skill_level" gorm:"not null;size:50;index"`
	Price               float64     `json:"price" gorm:"not null"`
	OrganizerID         string      `json:"organizer_id" gorm:"not null;size:191;index"`
	OrganizerName       string      `json:"organizer_name" gorm:"not null;size:255"`
	CurrentParticipants int         `json:"current_participants" gorm:"default:1"`
	Participants        StringSlice `json:"participants" gorm:"type:json"`
	Status              string      `json:"status" gorm:"not null;size:20;index"`
	Tags                StringSlice `json:"tags" gorm:"type:json"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// AddParticipant appends userID to the participant list and keeps
// CurrentParticipants equal to the list length. Capacity and duplicate
// membership are checked against the in-memory state, so the caller is
// expected to persist the event row it loaded.
func (e *Event) AddParticipant(userID string) error {
	if e.Participants.Contains(userID) {
		return ErrAlreadyJoined
	}
	if len(e.Participants) >= e.MaxParticipants {
		return ErrEventFull
	}

	e.Participants = append(e.Participants, userID)
	e.CurrentParticipants = len(e.Participants)
	return nil
}

// RemoveParticipant removes userID from the participant list. The organizer
// is always participant zero and can never be removed.
func (e *Event) RemoveParticipant(userID string) error {
	if userID == e.OrganizerID {
		return ErrOrganizerCannotLeave
	}
	if !e.Participants.Contains(userID) {
		return ErrNotParticipant
	}

	remaining := make(StringSlice, 0, len(e.Participants)-1)
	for _, id := range e.Participants {
		if id != userID {
			remaining = append(remaining, id)
		}
	}
	e.Participants = remaining
	e.CurrentParticipants = len(e.Participants)
	return nil
}

// EventParticipant is the minimal public projection of a participant
// returned alongside an event.
type EventParticipant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Photo *string `json:"photo"`
}

// EventWithParticipants decorates an event with resolved participant details.
type EventWithParticipants struct {
	Event
	ParticipantDetails []EventParticipant `json:"participant_details"`
}
