package models

import (
	"errors"
	"fmt"
	"testing"
)

func newTestEvent(maxParticipants int) *Event {
	return &Event{
		ID:                  "event-1",
		Title:               "Sunday Football",
		Sport:               "football",
		MaxParticipants:     maxParticipants,
		OrganizerID:         "organizer",
		CurrentParticipants: 1,
		Participants:        StringSlice{"organizer"},
		Status:              EventStatusActive,
	}
}

func TestEvent_AddParticipant(t *testing.T) {
	event := newTestEvent(3)

	if err := event.AddParticipant("user-1"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}

	if event.CurrentParticipants != len(event.Participants) {
		t.Errorf("CurrentParticipants = %d, want %d", event.CurrentParticipants, len(event.Participants))
	}
	if !event.Participants.Contains("user-1") {
		t.Errorf("participants %v missing user-1", event.Participants)
	}
	if event.Participants[0] != "organizer" {
		t.Errorf("organizer is no longer participant zero: %v", event.Participants)
	}
}

func TestEvent_AddParticipant_AlreadyJoined(t *testing.T) {
	event := newTestEvent(3)

	if err := event.AddParticipant("user-1"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	if err := event.AddParticipant("user-1"); !errors.Is(err, ErrAlreadyJoined) {
		t.Errorf("AddParticipant() error = %v, want ErrAlreadyJoined", err)
	}
	if event.CurrentParticipants != 2 {
		t.Errorf("CurrentParticipants = %d, want 2", event.CurrentParticipants)
	}
}

func TestEvent_AddParticipant_Full(t *testing.T) {
	event := newTestEvent(2)

	if err := event.AddParticipant("user-1"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	if err := event.AddParticipant("user-2"); !errors.Is(err, ErrEventFull) {
		t.Errorf("AddParticipant() error = %v, want ErrEventFull", err)
	}
	if len(event.Participants) != event.MaxParticipants {
		t.Errorf("len(participants) = %d, want %d", len(event.Participants), event.MaxParticipants)
	}
}

func TestEvent_AddParticipant_NeverExceedsMax(t *testing.T) {
	event := newTestEvent(5)

	for i := 0; i < 10; i++ {
		_ = event.AddParticipant(fmt.Sprintf("user-%d", i))
	}

	if len(event.Participants) > event.MaxParticipants {
		t.Errorf("len(participants) = %d exceeds max %d", len(event.Participants), event.MaxParticipants)
	}
	if event.CurrentParticipants != len(event.Participants) {
		t.Errorf("CurrentParticipants = %d, want %d", event.CurrentParticipants, len(event.Participants))
	}
}

func TestEvent_RemoveParticipant(t *testing.T) {
	event := newTestEvent(3)
	if err := event.AddParticipant("user-1"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}

	if err := event.RemoveParticipant("user-1"); err != nil {
		t.Fatalf("RemoveParticipant() error = %v", err)
	}

	if event.Participants.Contains("user-1") {
		t.Errorf("participants %v still contains user-1", event.Participants)
	}
	if event.CurrentParticipants != len(event.Participants) {
		t.Errorf("CurrentParticipants = %d, want %d", event.CurrentParticipants, len(event.Participants))
	}
}

func TestEvent_RemoveParticipant_Organizer(t *testing.T) {
	event := newTestEvent(3)

	if err := event.RemoveParticipant("organizer"); !errors.Is(err, ErrOrganizerCannotLeave) {
		t.Errorf("RemoveParticipant() error = %v, want ErrOrganizerCannotLeave", err)
	}
	if !event.Participants.Contains("organizer") {
		t.Errorf("organizer was removed: %v", event.Participants)
	}
}

func TestEvent_RemoveParticipant_NotMember(t *testing.T) {
	event := newTestEvent(3)

	if err := event.RemoveParticipant("stranger"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("RemoveParticipant() error = %v, want ErrNotParticipant", err)
	}
}

func TestEvent_JoinLeaveRoundTrip(t *testing.T) {
	event := newTestEvent(4)

	for _, id := range []string{"a", "b", "c"} {
		if err := event.AddParticipant(id); err != nil {
			t.Fatalf("AddParticipant(%q) error = %v", id, err)
		}
		if event.CurrentParticipants != len(event.Participants) {
			t.Fatalf("count out of sync after join of %q", id)
		}
	}

	for _, id := range []string{"b", "a"} {
		if err := event.RemoveParticipant(id); err != nil {
			t.Fatalf("RemoveParticipant(%q) error = %v", id, err)
		}
		if event.CurrentParticipants != len(event.Participants) {
			t.Fatalf("count out of sync after leave of %q", id)
		}
	}

	if event.CurrentParticipants != 2 {
		t.Errorf("CurrentParticipants = %d, want 2", event.CurrentParticipants)
	}
}
