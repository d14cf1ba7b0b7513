package api

import (
	"context"
	"net/http"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
)

// Transfer moves funds from sender to req.Recipient.
func (c *Client) Transfer(ctx context.Context, sender models.UserID, req dto.TransferRequest) error {
	return c.call(ctx, http.MethodPost, endpoint(c.cfg.MovementsURL, "transfer", sender.String()), req, nil,
		func(status int, _ string) (Kind, bool) {
			switch status {
			case http.StatusNotFound:
				return KindRecipientNotFound, true
			case http.StatusUnauthorized:
				return KindInsufficientBalance, true
			}
			return 0, false
		})
}

// OutgoingTransfers lists transfers sent by id, in backend order. An absent
// id yields an empty list without a request, as does IncomingTransfers.
func (c *Client) OutgoingTransfers(ctx context.Context, id models.UserID) ([]models.OutgoingTransfer, error) {
	if id.IsZero() {
		return nil, nil
	}
	var out []models.OutgoingTransfer
	if err := c.call(ctx, http.MethodGet, endpoint(c.cfg.HistoryURL, "transfers", id.String(), "outgoing"), nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// IncomingTransfers lists transfers received by id, in backend order.
func (c *Client) IncomingTransfers(ctx context.Context, id models.UserID) ([]models.IncomingTransfer, error) {
	if id.IsZero() {
		return nil, nil
	}
	var out []models.IncomingTransfer
	if err := c.call(ctx, http.MethodGet, endpoint(c.cfg.HistoryURL, "transfers", id.String(), "incoming"), nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}
