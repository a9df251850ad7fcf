// File: /models/sport.go
package models

// Sport is an entry of the static sports catalog.
type Sport struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameDa string `json:"name_da"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

var sportsCatalog = []Sport{
	{ID: "football", Name: "Football", NameDa: "Fodbold", Icon: "⚽", Color: "#10B981"},
	{ID: "basketball", Name: "Basketball", NameDa: "Basketball", Icon: "🏀", Color: "#F59E0B"},
	{ID: "tennis", Name: "Tennis", NameDa: "Tennis", Icon: "🎾", Color: "#EF4444"},
	{ID: "running", Name: "Running", NameDa: "Løb", Icon: "🏃", Color: "#8B5CF6"},
	{ID: "cycling", Name: "Cycling", NameDa: "Cykling", Icon: "🚴", Color: "#06B6D4"},
	{ID: "fitness", Name: "Fitness", NameDa: "Fitness", Icon: "💪", Color: "#F97316"},
}

// AllSports returns the full sports catalog.
func AllSports() []Sport {
	return sportsCatalog
}

// GetSportByID looks up a sport by its identifier.
func GetSportByID(id string) (Sport, bool) {
	for _, sport := range sportsCatalog {
		if sport.ID == id {
			return sport, true
		}
	}
	return Sport{}, false
}
