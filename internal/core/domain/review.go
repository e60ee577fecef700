package domain

import "time"

// Review belongs to a bootcamp; a user may submit at most one per bootcamp
// (unique compound index). Rating feeds the bootcamp's averageRating.
type Review struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Title      string    `json:"title" bson:"title"`
	Text       string    `json:"text" bson:"text"`
	Rating     int       `json:"rating" bson:"rating"`
	BootcampID string    `json:"bootcamp" bson:"bootcamp"`
	UserID     string    `json:"user" bson:"user"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
