package screens

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/resource"
	"github.com/hongminglow/yapekuna/internal/session"
)

// Summary is the header of the dashboard.
type Summary struct {
	Name    string
	Balance decimal.Decimal
}

// Dashboard shows the user's name and balance and owns the transfer dialog.
type Dashboard struct {
	api      AccountAPI
	summary  *resource.Resource[Summary]
	Transfer *TransferForm
}

type DashboardAPI interface {
	AccountAPI
	TransferAPI
}

func NewDashboard(api DashboardAPI, transferMax decimal.Decimal) *Dashboard {
	return &Dashboard{
		api:      api,
		summary:  resource.New[Summary](MsgBalanceUnavailable),
		Transfer: NewTransferForm(api, transferMax),
	}
}

// Mount loads balance and name together. The summary settles once, after both
// requests have finished.
func (d *Dashboard) Mount(ctx context.Context) error {
	id := session.UserID(ctx)
	gen := d.summary.Begin()

	var s Summary
	err := resource.Join(ctx,
		func(ctx context.Context) error {
			balance, err := d.api.Balance(ctx, id)
			s.Balance = balance
			return err
		},
		func(ctx context.Context) error {
			name, err := d.api.DisplayName(ctx, id)
			s.Name = name
			return err
		},
	)
	d.summary.Settle(gen, s, err)
	return err
}

func (d *Dashboard) Unmount() { d.summary.Unmount() }

func (d *Dashboard) Summary() resource.Snapshot[Summary] { return d.summary.Snapshot() }

// SubmitTransfer sends the transfer dialog and refreshes the balance after a
// successful transfer.
func (d *Dashboard) SubmitTransfer(ctx context.Context) error {
	if err := d.Transfer.Submit(ctx); err != nil {
		return err
	}
	_ = d.Mount(ctx)
	return nil
}
