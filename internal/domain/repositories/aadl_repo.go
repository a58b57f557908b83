package repositories

import (
	"context"

	"docpress/internal/domain/entities"
)

type AadlDemandeRepository interface {
	// Create inserts the request and fills in its generated ID.
	Create(ctx context.Context, demande *entities.AadlDemande) error
	List(ctx context.Context) ([]entities.AadlDemande, error)
}
