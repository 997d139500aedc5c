package ports

import (
	"context"

	"github.com/Jgauri24/happenix/internal/domain"
)

type TicketIssuer interface {
	Issue(ctx context.Context, req domain.TicketRequest) (*domain.Ticket, error)
}
