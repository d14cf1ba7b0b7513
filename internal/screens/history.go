package screens

import (
	"context"

	"github.com/hongminglow/yapekuna/internal/history"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/resource"
	"github.com/hongminglow/yapekuna/internal/session"
)

// TransferHistory lists sent and received transfers, newest first.
type TransferHistory struct {
	api     HistoryAPI
	records *resource.Resource[[]models.TransferRecord]
}

func NewTransferHistory(api HistoryAPI) *TransferHistory {
	return &TransferHistory{
		api:     api,
		records: resource.New[[]models.TransferRecord](MsgTransfersUnavailable),
	}
}

func (h *TransferHistory) Mount(ctx context.Context) error {
	id := session.UserID(ctx)
	gen := h.records.Begin()

	var (
		out []models.OutgoingTransfer
		in  []models.IncomingTransfer
	)
	err := resource.Join(ctx,
		func(ctx context.Context) (err error) {
			out, err = h.api.OutgoingTransfers(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			in, err = h.api.IncomingTransfers(ctx, id)
			return err
		},
	)
	var merged []models.TransferRecord
	if err == nil {
		merged = history.Merge(out, in)
	}
	h.records.Settle(gen, merged, err)
	return err
}

func (h *TransferHistory) Unmount() { h.records.Unmount() }

func (h *TransferHistory) Records() resource.Snapshot[[]models.TransferRecord] {
	return h.records.Snapshot()
}
