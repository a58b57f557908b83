package repositories

import (
	"context"

	"docpress/internal/domain/entities"
)

type PrintGroupRepository interface {
	Create(ctx context.Context, group *entities.PrintGroup) (string, error)
	List(ctx context.Context) ([]entities.PrintGroup, error)
	// RemoveFileByPublicID pulls the matching file ref out of every group and
	// returns the number of groups touched.
	RemoveFileByPublicID(ctx context.Context, publicID string) (int64, error)
	RemoveFileByURL(ctx context.Context, url string) (int64, error)
}
