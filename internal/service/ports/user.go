package ports

import (
	"context"

	"github.com/Jgauri24/happenix/internal/domain"
)

// UserDirectory resolves acting users for authorization checks and
// notification addressing. The attended counter is maintained by the
// booking repository inside the attendance transaction.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
