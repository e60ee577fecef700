package domain

import "time"

// Location is a GeoJSON point plus the formatted address it was resolved from.
type Location struct {
	Type             string    `json:"type" bson:"type"`
	Coordinates      []float64 `json:"coordinates" bson:"coordinates"` // [lng, lat]
	FormattedAddress string    `json:"formattedAddress,omitempty" bson:"formattedAddress,omitempty"`
	Street           string    `json:"street,omitempty" bson:"street,omitempty"`
	City             string    `json:"city,omitempty" bson:"city,omitempty"`
	State            string    `json:"state,omitempty" bson:"state,omitempty"`
	Zipcode          string    `json:"zipcode,omitempty" bson:"zipcode,omitempty"`
	Country          string    `json:"country,omitempty" bson:"country,omitempty"`
}

// Bootcamp is the primary directory resource. Each non-admin publisher may own
// at most one, enforced at creation time by the service layer.
// Location is nil until the address geocodes; the field is omitted from the
// stored document so the 2dsphere index never sees an invalid point.
type Bootcamp struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Slug          string    `json:"slug" bson:"slug"`
	Description   string    `json:"description" bson:"description"`
	Website       string    `json:"website,omitempty" bson:"website,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	Location      *Location `json:"location,omitempty" bson:"location,omitempty"`
	Careers       []string  `json:"careers" bson:"careers"`
	AverageRating float64   `json:"averageRating,omitempty" bson:"averageRating,omitempty"`
	AverageCost   float64   `json:"averageCost,omitempty" bson:"averageCost,omitempty"`
	Photo         string    `json:"photo,omitempty" bson:"photo,omitempty"`
	Housing       bool      `json:"housing" bson:"housing"`
	JobAssistance bool      `json:"jobAssistance" bson:"jobAssistance"`
	JobGuarantee  bool      `json:"jobGuarantee" bson:"jobGuarantee"`
	AcceptGi      bool      `json:"acceptGi" bson:"acceptGi"`
	UserID        string    `json:"user" bson:"user"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
