package worksite

import "context"

// WorksiteRepository defines data access for worksites.
type WorksiteRepository interface {
	GetByID(ctx context.Context, id string) (Worksite, error)
}
