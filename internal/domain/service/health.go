package service

import "context"

// HealthChecker is implemented by collaborators that can report their own readiness
type HealthChecker interface {
	Ready(ctx context.Context) error
}
