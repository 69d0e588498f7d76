package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nivel36/janus/internal/domain/admin"
	"github.com/nivel36/janus/internal/pkg/database"
)

// defaultDaysUntilLocked applies when the settings row has not been
// created yet.
const defaultDaysUntilLocked = 3

type adminPolicyRepository struct {
	db *database.DB
}

func NewAdminPolicyRepository(db *database.DB) admin.PolicyRepository {
	return &adminPolicyRepository{db: db}
}

// Get implements admin.PolicyRepository.
func (r *adminPolicyRepository) Get(ctx context.Context) (admin.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT days_until_locked
		FROM admin_settings
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p admin.Policy
	err := q.QueryRow(ctx, query).Scan(&p.DaysUntilLocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Policy{DaysUntilLocked: defaultDaysUntilLocked}, nil
		}
		return admin.Policy{}, fmt.Errorf("failed to get admin settings: %w", err)
	}

	return p, nil
}
