package admin

import "context"

// PolicyRepository defines data access for the administrative policy.
type PolicyRepository interface {
	Get(ctx context.Context) (Policy, error)
}
