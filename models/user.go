// File: /models/user.go
package models

import (
	"time"
)

// Skill levels shared by users and events
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelAll          = "all"
)

type User struct {
	ID                 string      `json:"id" gorm:"primaryKey;size:191"`
	Name               string      `json:"name" gorm:"not null;size:255"`
	Email              string      `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password           string      `json:"-" gorm:"not null;size:255"`
	Age                int         `json:"age" gorm:"not null"`
	Location           string      `json:"location" gorm:"size:255"`
	Bio                string      `json:"bio" gorm:"type:text"`
	Sports             StringSlice `json:"sports" gorm:"type:json"`
	SkillLevel         string      `json:"skill_level" gorm:"not null;size:50"`
	Photo              *string     `json:"photo" gorm:"type:mediumtext"`
	EventsParticipated int         `json:"events_participated" gorm:"default:0"`
	EventsCreated      int         `json:"events_created" gorm:"default:0"`
	Badges             StringSlice `json:"badges" gorm:"type:json"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// IsValidSkillLevel checks a skill level against the known set.
func IsValidSkillLevel(level string) bool {
	switch level {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelAll:
		return true
	}
	return false
}

// UserStats is the payload of GET /users/stats.
type UserStats struct {
	EventsParticipated int   `json:"events_participated"`
	EventsCreated      int   `json:"events_created"`
	BadgesCount        int   `json:"badges_count"`
	FriendsCount       int64 `json:"friends_count"`
	SportsCount        int   `json:"sports_count"`
}
