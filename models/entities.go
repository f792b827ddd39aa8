package models

import "time"

// SourceType tags which catalog collection an entity came from.
type SourceType string

const (
	SourceDestination SourceType = "destination"
	SourceActivity    SourceType = "activity"
	SourceHotel       SourceType = "hotel"
	SourcePlace       SourceType = "place"
	SourceRestaurant  SourceType = "restaurant"
)

var SourceTypes = []SourceType{
	SourceDestination, SourceActivity, SourceHotel, SourcePlace, SourceRestaurant,
}

type Destination struct {
	DestinationID string    `json:"id" bson:"destinationid"`
	Name          string    `json:"name" bson:"name"`
	Country       string    `json:"country" bson:"country"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Featured      bool      `json:"featured" bson:"featured"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type Activity struct {
	ActivityID    string    `json:"id" bson:"activityid"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Category      string    `json:"category" bson:"category"`
	DestinationID string    `json:"destination_id,omitempty" bson:"destinationid,omitempty"`
	DurationHours float64   `json:"duration_hours,omitempty" bson:"duration_hours,omitempty"`
	Price         float64   `json:"price,omitempty" bson:"price,omitempty"`
	Rating        float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type Hotel struct {
	HotelID       string    `json:"id" bson:"hotelid"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	Amenities     []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	DestinationID string    `json:"destination_id,omitempty" bson:"destinationid,omitempty"`
	PricePerNight float64   `json:"price_per_night,omitempty" bson:"price_per_night,omitempty"`
	Rating        float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type Place struct {
	PlaceID       string    `json:"id" bson:"placeid"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Category      string    `json:"category" bson:"category"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	Province      string    `json:"province,omitempty" bson:"province,omitempty"`
	DestinationID string    `json:"destination_id,omitempty" bson:"destinationid,omitempty"`
	Rating        float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type Restaurant struct {
	RestaurantID  string    `json:"id" bson:"restaurantid"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Cuisine       string    `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	PriceRange    string    `json:"price_range,omitempty" bson:"price_range,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	DestinationID string    `json:"destination_id,omitempty" bson:"destinationid,omitempty"`
	Rating        float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
