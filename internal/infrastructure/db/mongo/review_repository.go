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

const reviewsCollection = "reviews"

// ReviewRepository implements ports.ReviewRepository on MongoDB. The
// (bootcamp, user) pair carries a unique compound index so a user can review
// a bootcamp at most once.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(reviewsCollection)}
}

func reviewNotFound(id string) *domain.Error {
	return domain.NewError(404, "No review found with the id of "+id)
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	review.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.NewDuplicate("user", review.UserID)
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, domain.NewNotFound(id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var review domain.Review
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reviewNotFound(id)
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) FindByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"bootcamp": bootcampID})
	if err != nil {
		return nil, fmt.Errorf("find reviews by bootcamp: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Review, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ReviewRepository) List(ctx context.Context, q query.Query) ([]*domain.Review, int64, error) {
	return listDocuments[domain.Review](ctx, r.col, q)
}

func (r *ReviewRepository) Update(ctx context.Context, id string, set map[string]any) (*domain.Review, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, domain.NewNotFound(id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var review domain.Review
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reviewNotFound(id)
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	if !primitive.IsValidObjectID(id) {
		return domain.NewNotFound(id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return reviewNotFound(id)
	}
	return nil
}

func (r *ReviewRepository) DeleteByBootcamp(ctx context.Context, bootcampID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"bootcamp": bootcampID})
	return err
}

func (r *ReviewRepository) AverageRating(ctx context.Context, bootcampID string) (float64, error) {
	return averageField(ctx, r.col, bootcampID, "rating")
}
