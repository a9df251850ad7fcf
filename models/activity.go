// File: /models/activity.go
package models

import (
	"strings"
)

// GetUserBadges derives the badge set from the two activity counters. The
// set is always rebuilt from scratch; callers must not patch it
// incrementally, since a leave can un-meet the lowest threshold.
func GetUserBadges(eventsParticipated, eventsCreated int) StringSlice {
	badges := StringSlice{}

	if eventsParticipated >= 1 {
		badges = append(badges, "First Timer")
	}
	if eventsParticipated >= 5 {
		badges = append(badges, "Active Player")
	}
	if eventsParticipated >= 10 {
		badges = append(badges, "Sports Enthusiast")
	}
	if eventsParticipated >= 25 {
		badges = append(badges, "Community Champion")
	}

	if eventsCreated >= 1 {
		badges = append(badges, "Event Organizer")
	}
	if eventsCreated >= 5 {
		badges = append(badges, "Community Builder")
	}
	if eventsCreated >= 10 {
		badges = append(badges, "Sports Leader")
	}

	return badges
}

// GenerateEventTags derives the tag list for an event from price, location,
// sport and skill level.
func GenerateEventTags(price float64, location, sport, skillLevel string) StringSlice {
	tags := StringSlice{}

	if price == 0 {
		tags = append(tags, "free")
	} else {
		tags = append(tags, "paid")
	}

	loc := strings.ToLower(location)
	if strings.Contains(loc, "indoor") || strings.Contains(loc, "gym") || strings.Contains(loc, "center") {
		tags = append(tags, "indoor")
	} else {
		tags = append(tags, "outdoor")
	}

	if sport != "" {
		tags = append(tags, sport)
	}

	if skillLevel != "" && skillLevel != SkillLevelAll {
		tags = append(tags, skillLevel)
	}

	return tags
}

// CalculateMutualEvents returns the size of the intersection of two
// participated-event-id lists.
func CalculateMutualEvents(userEvents, friendEvents []string) int {
	seen := make(map[string]struct{}, len(userEvents))
	for _, id := range userEvents {
		seen[id] = struct{}{}
	}

	mutual := 0
	counted := make(map[string]struct{}, len(friendEvents))
	for _, id := range friendEvents {
		if _, dup := counted[id]; dup {
			continue
		}
		counted[id] = struct{}{}
		if _, ok := seen[id]; ok {
			mutual++
		}
	}
	return mutual
}
