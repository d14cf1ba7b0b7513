package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/models"
)

// Balance returns the account balance. An absent id yields zero without a request.
func (c *Client) Balance(ctx context.Context, id models.UserID) (decimal.Decimal, error) {
	if id.IsZero() {
		return decimal.Zero, nil
	}
	var out models.Balance
	if err := c.call(ctx, http.MethodGet, endpoint(c.cfg.AuthURL, "account", id.String(), "balance"), nil, &out, nil); err != nil {
		return decimal.Zero, err
	}
	return out.Balance, nil
}

// DisplayName returns the account holder's name. An absent id yields "" without a request.
func (c *Client) DisplayName(ctx context.Context, id models.UserID) (string, error) {
	if id.IsZero() {
		return "", nil
	}
	var out models.DisplayName
	if err := c.call(ctx, http.MethodGet, endpoint(c.cfg.AuthURL, "account", id.String(), "name"), nil, &out, nil); err != nil {
		return "", err
	}
	return out.Name, nil
}
