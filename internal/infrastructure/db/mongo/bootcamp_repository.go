package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

const bootcampsCollection = "bootcamps"

// BootcampRepository implements ports.BootcampRepository on MongoDB. Name
// carries a unique index; location carries a 2dsphere index for the radius
// search.
type BootcampRepository struct {
	col *mongo.Collection
}

func NewBootcampRepository(db *mongo.Database) *BootcampRepository {
	return &BootcampRepository{col: db.Collection(bootcampsCollection)}
}

func (r *BootcampRepository) Create(ctx context.Context, b *domain.Bootcamp) (*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.NewDuplicate("name", b.Name)
		}
		return nil, fmt.Errorf("insert bootcamp: %w", err)
	}
	return b, nil
}

func (r *BootcampRepository) FindByID(ctx context.Context, id string) (*domain.Bootcamp, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, domain.NewNotFound(id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Bootcamp
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(404, "Bootcamp not found")
		}
		return nil, fmt.Errorf("find bootcamp: %w", err)
	}
	return &b, nil
}

func (r *BootcampRepository) FindByOwner(ctx context.Context, userID string) (*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Bootcamp
	if err := r.col.FindOne(ctx, bson.M{"user": userID}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(404, "Bootcamp not found")
		}
		return nil, fmt.Errorf("find bootcamp by owner: %w", err)
	}
	return &b, nil
}

func (r *BootcampRepository) List(ctx context.Context, q query.Query) ([]*domain.Bootcamp, int64, error) {
	return listDocuments[domain.Bootcamp](ctx, r.col, q)
}

func (r *BootcampRepository) Update(ctx context.Context, id string, set map[string]any) (*domain.Bootcamp, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, domain.NewNotFound(id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b domain.Bootcamp
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(404, "Bootcamp not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			if name, ok := set["name"].(string); ok {
				return nil, domain.NewDuplicate("name", name)
			}
		}
		return nil, fmt.Errorf("update bootcamp: %w", err)
	}
	return &b, nil
}

func (r *BootcampRepository) Delete(ctx context.Context, id string) error {
	if !primitive.IsValidObjectID(id) {
		return domain.NewNotFound(id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete bootcamp: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewError(404, "Bootcamp not found")
	}
	return nil
}

func (r *BootcampRepository) FindWithinRadius(ctx context.Context, lng, lat, radius float64) ([]*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, radius},
			},
		},
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("radius search: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Bootcamp, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
