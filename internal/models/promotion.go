package models

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PromotionSummary is one entry of GET /promotions.
type PromotionSummary struct {
	ID       string          `json:"id"`
	Store    string          `json:"store_name"`
	Product  string          `json:"product_name"`
	Discount decimal.Decimal `json:"discount"`
	Price    decimal.Decimal `json:"price"`
}

// DiscountedPrice is price × (1 − discount/100), rounded to cents.
func (p PromotionSummary) DiscountedPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(p.Discount.Div(hundred))
	return p.Price.Mul(factor).Round(2)
}

// Promotion is the full record of GET /promotion/{id}.
type Promotion struct {
	PromotionSummary
	Description string `json:"description"`
	ValidFrom   string `json:"valid_from"`
	ValidUntil  string `json:"valid_until"`
}
