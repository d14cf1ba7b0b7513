package screens

import (
	"context"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/resource"
	"github.com/hongminglow/yapekuna/internal/session"
)

// Payments lists the user's promotion payments.
type Payments struct {
	api      PaymentsAPI
	payments *resource.Resource[[]models.Payment]
}

func NewPayments(api PaymentsAPI) *Payments {
	return &Payments{api: api, payments: resource.New[[]models.Payment](MsgPaymentsUnavailable)}
}

func (p *Payments) Mount(ctx context.Context) error {
	id := session.UserID(ctx)
	return p.payments.Load(ctx, func(ctx context.Context) ([]models.Payment, error) {
		return p.api.Payments(ctx, id)
	})
}

func (p *Payments) Unmount() { p.payments.Unmount() }

func (p *Payments) List() resource.Snapshot[[]models.Payment] { return p.payments.Snapshot() }
