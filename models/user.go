package models

import "time"

// Profile mirrors the externally managed identity; this service only stores
// display data keyed by the user id carried in the JWT.
type Profile struct {
	UserID      string    `json:"userid" bson:"userid"`
	DisplayName string    `json:"display_name,omitempty" bson:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Language    string    `json:"language,omitempty" bson:"language,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
