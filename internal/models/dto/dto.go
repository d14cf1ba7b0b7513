// Package dto holds the request and error bodies exchanged with the backend services.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type LoginRequest struct {
	Phone string `json:"phone"`
}

type TransferRequest struct {
	Recipient   string          `json:"recipient"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// MarshalJSON always sends the amount as a JSON number, whatever
// decimal.MarshalJSONWithoutQuotes is set to.
func (r TransferRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Recipient   string      `json:"recipient"`
		Amount      json.Number `json:"amount"`
		Description string      `json:"description"`
	}{r.Recipient, json.Number(r.Amount.String()), r.Description})
}

type PromotionPaymentRequest struct {
	PayerID string `json:"payer_id"`
}

// ErrorBody is the error shape backends use to disambiguate failures sharing a status.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error tags used by the movements service. Other tags are informational only.
const (
	TagInsufficientBalance = "insufficient_balance"
	TagPromotionExpired    = "promotion_expired"
	TagStoreNotFound       = "store_not_found"
	TagPromotionNotFound   = "promotion_not_found"
)
