package models

import (
	"testing"
)

func TestFriendship_CounterpartOf(t *testing.T) {
	friendship := &Friendship{
		ID:       "f1",
		UserID:   "alice",
		FriendID: "bob",
		Status:   FriendshipStatusAccepted,
	}

	tests := []struct {
		name   string
		userID string
		want   string
	}{
		{
			name:   "Requester side",
			userID: "alice",
			want:   "bob",
		},
		{
			name:   "Recipient side",
			userID: "bob",
			want:   "alice",
		},
		{
			name:   "Unrelated user",
			userID: "carol",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := friendship.CounterpartOf(tt.userID); got != tt.want {
				t.Errorf("CounterpartOf(%q) = %q, want %q", tt.userID, got, tt.want)
			}
		})
	}
}

func TestFriendshipStatusConstants(t *testing.T) {
	if FriendshipStatusPending != "pending" {
		t.Errorf("FriendshipStatusPending = %q, want %q", FriendshipStatusPending, "pending")
	}
	if FriendshipStatusAccepted != "accepted" {
		t.Errorf("FriendshipStatusAccepted = %q, want %q", FriendshipStatusAccepted, "accepted")
	}
	if FriendshipStatusRejected != "rejected" {
		t.Errorf("FriendshipStatusRejected = %q, want %q", FriendshipStatusRejected, "rejected")
	}
}
