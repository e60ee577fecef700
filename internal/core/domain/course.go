package domain

import "time"

const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Course belongs to a bootcamp. Tuition feeds the bootcamp's averageCost,
// recomputed asynchronously after every course write.
type Course struct {
	ID                   string    `json:"id" bson:"_id,omitempty"`
	Title                string    `json:"title" bson:"title"`
	Description          string    `json:"description" bson:"description"`
	Weeks                int       `json:"weeks" bson:"weeks"`
	Tuition              float64   `json:"tuition" bson:"tuition"`
	MinimumSkill         string    `json:"minimumSkill" bson:"minimumSkill"`
	ScholarshipAvailable bool      `json:"scholarshipAvailable" bson:"scholarshipAvailable"`
	BootcampID           string    `json:"bootcamp" bson:"bootcamp"`
	UserID               string    `json:"user" bson:"user"`
	CreatedAt            time.Time `json:"createdAt" bson:"createdAt"`
}
