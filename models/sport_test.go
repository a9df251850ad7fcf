package models

import (
	"testing"
)

func TestGetSportByID(t *testing.T) {
	tests := []struct {
		name    string
		sportID string
		wantOK  bool
	}{
		{
			name:    "Known sport",
			sportID: "football",
			wantOK:  true,
		},
		{
			name:    "Another known sport",
			sportID: "fitness",
			wantOK:  true,
		},
		{
			name:    "Unknown sport",
			sportID: "chess",
			wantOK:  false,
		},
		{
			name:    "Empty id",
			sportID: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sport, ok := GetSportByID(tt.sportID)
			if ok != tt.wantOK {
				t.Errorf("GetSportByID(%q) ok = %v, want %v", tt.sportID, ok, tt.wantOK)
			}
			if ok && sport.ID != tt.sportID {
				t.Errorf("GetSportByID(%q) returned sport %q", tt.sportID, sport.ID)
			}
		})
	}
}

func TestAllSports(t *testing.T) {
	sports := AllSports()
	if len(sports) != 6 {
		t.Fatalf("AllSports() returned %d sports, want 6", len(sports))
	}

	for _, sport := range sports {
		if sport.ID == "" || sport.Name == "" || sport.NameDa == "" {
			t.Errorf("sport %+v has empty required fields", sport)
		}
	}
}

func TestIsValidSkillLevel(t *testing.T) {
	for _, level := range []string{SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelAll} {
		if !IsValidSkillLevel(level) {
			t.Errorf("IsValidSkillLevel(%q) = false, want true", level)
		}
	}

	for _, level := range []string{"", "expert", "Beginner"} {
		if IsValidSkillLevel(level) {
			t.Errorf("IsValidSkillLevel(%q) = true, want false", level)
		}
	}
}
