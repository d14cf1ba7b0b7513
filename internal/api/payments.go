package api

import (
	"context"
	"net/http"

	"github.com/hongminglow/yapekuna/internal/models"
)

// Payments lists promotion payments made by id. 404 fails with ErrNoPayments.
// An absent id yields an empty list without a request.
func (c *Client) Payments(ctx context.Context, id models.UserID) ([]models.Payment, error) {
	if id.IsZero() {
		return nil, nil
	}
	var out []models.Payment
	if err := c.call(ctx, http.MethodGet, endpoint(c.cfg.HistoryURL, "payments", id.String()), nil, &out,
		statusIs(http.StatusNotFound, KindNoPayments)); err != nil {
		return nil, err
	}
	return out, nil
}
