// AngelaMos | 2026
// collection.go

package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is a typed CRUD wrapper over a single Mongo collection.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

// Find returns every document matching filter. The result is never nil.
func (c *Collection[T]) Find(
	ctx context.Context,
	filter any,
	opts ...*options.FindOptions,
) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.Name(), err)
	}

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Name(), err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var item T
	err := c.coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find one %s: %w", c.Name(), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", c.Name(), err)
	}

	return &item, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return c.FindOne(ctx, bson.M{"_id": oid})
}

func (c *Collection[T]) Exists(ctx context.Context, filter any) (bool, error) {
	err := c.coll.FindOne(ctx, filter,
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", c.Name(), err)
	}
	return true, nil
}

// Insert stores doc and returns the generated id as hex.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", c.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (c *Collection[T]) InsertMany(ctx context.Context, docs []T) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	batch := make([]any, 0, len(docs))
	for i := range docs {
		batch = append(batch, docs[i])
	}

	res, err := c.coll.InsertMany(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("insert many %s: %w", c.Name(), err)
	}
	return len(res.InsertedIDs), nil
}

func (c *Collection[T]) UpdateByID(
	ctx context.Context,
	id string,
	update any,
) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	return c.UpdateOne(ctx, bson.M{"_id": oid}, update)
}

// UpdateOne applies update to the first match and reports ErrNotFound when
// nothing matched.
func (c *Collection[T]) UpdateOne(
	ctx context.Context,
	filter any,
	update any,
) error {
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.Name(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update %s: %w", c.Name(), ErrNotFound)
	}
	return nil
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.Name(), err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete %s: %w", c.Name(), ErrNotFound)
	}
	return nil
}

func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("parse id %q: %w", id, ErrInvalidID)
	}
	return oid, nil
}
