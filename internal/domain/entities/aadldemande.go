package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AadlDemande is a housing-programme application request captured from the
// public form. Requests are append-only; there is no update or delete flow.
type AadlDemande struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	FamilyName string             `bson:"familyname,omitempty" json:"familyname,omitempty"`
	Phone      string             `bson:"phone" json:"phone"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`
}
