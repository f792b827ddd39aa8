package models

import "time"

// SearchResults bundles one keyword fan-out across the five catalog
// collections. A nil slice and an empty slice both mean "nothing found" for
// that collection.
type SearchResults struct {
	Destinations []Destination `json:"destinations"`
	Activities   []Activity    `json:"activities"`
	Hotels       []Hotel       `json:"hotels"`
	Places       []Place       `json:"places"`
	Restaurants  []Restaurant  `json:"restaurants"`
}

// Total is the grounding count the assistant guard decides on.
func (s SearchResults) Total() int {
	return len(s.Destinations) + len(s.Activities) + len(s.Hotels) +
		len(s.Places) + len(s.Restaurants)
}

type ChatMessage struct {
	MessageID     string         `json:"messageid" bson:"messageid"`
	SessionID     string         `json:"session_id" bson:"session_id"`
	Role          string         `json:"role" bson:"role"` // "user" or "assistant"
	Content       string         `json:"content" bson:"content"`
	Timestamp     time.Time      `json:"timestamp" bson:"timestamp"`
	SearchResults *SearchResults `json:"search_results,omitempty" bson:"search_results,omitempty"`
}
