package models

import "time"

// Itinerary is a named, persisted trip saved from a session store snapshot.
type Itinerary struct {
	ItineraryID   string    `json:"itineraryid" bson:"itineraryid,omitempty"`
	UserID        string    `json:"user_id" bson:"user_id"`
	Name          string    `json:"name" bson:"name"`
	DestinationID string    `json:"destination_id,omitempty" bson:"destinationid,omitempty"`
	StartDate     string    `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate       string    `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Style         string    `json:"style,omitempty" bson:"style,omitempty"`
	Budget        float64   `json:"budget,omitempty" bson:"budget,omitempty"`
	Deleted       bool      `json:"-" bson:"deleted,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// SavedItineraryItem is the persisted form of one scheduled entity.
type SavedItineraryItem struct {
	ItemID      string    `json:"itemid" bson:"itemid"`
	ItineraryID string    `json:"itinerary_id" bson:"itinerary_id"`
	ItemType    string    `json:"item_type" bson:"item_type"`
	SourceID    string    `json:"source_id" bson:"source_id"`
	Name        string    `json:"name" bson:"name"`
	DayNumber   int       `json:"day_number" bson:"day_number"`
	OrderIndex  int       `json:"order_index" bson:"order_index"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	StartTime   string    `json:"start_time,omitempty" bson:"start_time,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
