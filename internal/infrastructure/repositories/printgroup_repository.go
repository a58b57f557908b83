package repositories

import (
	"context"
	"time"

	"docpress/internal/domain/entities"
	"docpress/internal/domain/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type printGroupRepository struct {
	coll *mongo.Collection
}

func NewPrintGroupRepository(db *mongo.Database) repositories.PrintGroupRepository {
	return &printGroupRepository{
		coll: db.Collection("docimpressions"),
	}
}

func (r *printGroupRepository) Create(ctx context.Context, group *entities.PrintGroup) (string, error) {
	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, group)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (r *printGroupRepository) List(ctx context.Context) ([]entities.PrintGroup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []entities.PrintGroup{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *printGroupRepository) RemoveFileByPublicID(ctx context.Context, publicID string) (int64, error) {
	return r.pullFiles(ctx,
		bson.M{"files.public_id": publicID},
		bson.M{"$pull": bson.M{"files": bson.M{"public_id": publicID}}})
}

func (r *printGroupRepository) RemoveFileByURL(ctx context.Context, url string) (int64, error) {
	return r.pullFiles(ctx,
		bson.M{"files.url": url},
		bson.M{"$pull": bson.M{"files": bson.M{"url": url}}})
}

func (r *printGroupRepository) pullFiles(ctx context.Context, filter, update bson.M) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
