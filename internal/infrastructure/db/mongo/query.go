package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// buildFilter translates the engine-agnostic filter set into Mongo operators.
// Scalars become equality matches; operator maps become $gt/$gte/$lt/$lte/$in.
func buildFilter(q query.Query) bson.M {
	filter := bson.M{}
	for field, v := range q.Filter {
		ops, ok := v.(map[string]any)
		if !ok {
			filter[field] = v
			continue
		}
		sub := bson.M{}
		for op, operand := range ops {
			sub["$"+op] = operand
		}
		filter[field] = sub
	}
	return filter
}

// buildFindOptions applies projection, sort, and pagination.
func buildFindOptions(q query.Query) *options.FindOptions {
	opts := options.Find().
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit))

	sort := bson.D{}
	for _, field := range q.Sort {
		if name, ok := strings.CutPrefix(field, "-"); ok {
			sort = append(sort, bson.E{Key: name, Value: -1})
		} else {
			sort = append(sort, bson.E{Key: field, Value: 1})
		}
	}
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	if len(q.Select) > 0 {
		proj := bson.M{}
		for _, field := range q.Select {
			proj[field] = 1
		}
		opts.SetProjection(proj)
	}

	return opts
}

// listDocuments runs the filtered, sorted, paginated find and returns the
// page plus the pre-pagination total.
func listDocuments[T any](ctx context.Context, col *mongo.Collection, q query.Query) ([]*T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := buildFilter(q)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := col.Find(ctx, filter, buildFindOptions(q))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := make([]*T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
