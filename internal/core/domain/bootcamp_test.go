package domain

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBootcampMarshal_LocationField(t *testing.T) {
	t.Run("unresolved location is omitted", func(t *testing.T) {
		raw, err := bson.Marshal(&Bootcamp{ID: "b1", Name: "Devworks"})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		// A zero-value point would be rejected by the 2dsphere index, so the
		// field must not reach the document at all.
		if _, ok := doc["location"]; ok {
			t.Fatalf("location must be omitted, got %v", doc["location"])
		}
	})

	t.Run("resolved location is stored", func(t *testing.T) {
		b := &Bootcamp{
			ID:       "b1",
			Name:     "Devworks",
			Location: &Location{Type: "Point", Coordinates: []float64{-71.0589, 42.3601}},
		}
		raw, err := bson.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var doc struct {
			Location *Location `bson:"location"`
		}
		if err := bson.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if doc.Location == nil || doc.Location.Type != "Point" || len(doc.Location.Coordinates) != 2 {
			t.Fatalf("unexpected location: %+v", doc.Location)
		}
	})
}
