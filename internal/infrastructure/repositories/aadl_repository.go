package repositories

import (
	"context"
	"time"

	"docpress/internal/domain/entities"
	"docpress/internal/domain/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type aadlDemandeRepository struct {
	coll *mongo.Collection
}

func NewAadlDemandeRepository(db *mongo.Database) repositories.AadlDemandeRepository {
	return &aadlDemandeRepository{
		coll: db.Collection("aadldemandes"),
	}
}

func (r *aadlDemandeRepository) Create(ctx context.Context, demande *entities.AadlDemande) error {
	now := time.Now()
	demande.CreatedAt = now
	demande.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, demande)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		demande.ID = oid
	}
	return nil
}

func (r *aadlDemandeRepository) List(ctx context.Context) ([]entities.AadlDemande, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	demandes := []entities.AadlDemande{}
	if err := cur.All(ctx, &demandes); err != nil {
		return nil, err
	}
	return demandes, nil
}
