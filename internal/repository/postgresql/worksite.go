package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nivel36/janus/internal/domain/worksite"
	"github.com/nivel36/janus/internal/pkg/database"
)

type worksiteRepository struct {
	db *database.DB
}

func NewWorksiteRepository(db *database.DB) worksite.WorksiteRepository {
	return &worksiteRepository{db: db}
}

// GetByID implements worksite.WorksiteRepository.
func (r *worksiteRepository) GetByID(ctx context.Context, id string) (worksite.Worksite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone, created_at, updated_at
		FROM worksites
		WHERE id = $1
	`

	var ws worksite.Worksite
	err := q.QueryRow(ctx, query, id).Scan(
		&ws.ID, &ws.Name, &ws.Timezone, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worksite.Worksite{}, worksite.ErrWorksiteNotFound
		}
		return worksite.Worksite{}, fmt.Errorf("failed to get worksite by ID: %w", err)
	}

	return ws, nil
}
