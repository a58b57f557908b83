package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileRef points at a single asset stored by the media-hosting provider.
// References are never mutated; deletion pulls them out of their group.
type FileRef struct {
	URL              string `bson:"url" json:"url"`
	PublicID         string `bson:"public_id,omitempty" json:"public_id,omitempty"`
	Format           string `bson:"format,omitempty" json:"format,omitempty"`
	Bytes            int64  `bson:"bytes,omitempty" json:"bytes,omitempty"`
	ResourceType     string `bson:"resource_type" json:"resource_type"`
	OriginalFilename string `bson:"original_filename,omitempty" json:"original_filename,omitempty"`
}

// PrintGroup is a named grouping of asset references for printing workflows.
type PrintGroup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	Files     []FileRef          `bson:"files" json:"files"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
