package models

import "github.com/shopspring/decimal"

// Balance is the body of GET /account/{id}/balance.
type Balance struct {
	Balance decimal.Decimal `json:"balance"`
}

// DisplayName is the body of GET /account/{id}/name.
type DisplayName struct {
	Name string `json:"name"`
}
