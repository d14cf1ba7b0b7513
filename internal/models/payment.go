package models

import "github.com/shopspring/decimal"

// Payment is a completed promotion payment.
type Payment struct {
	Recipient string          `json:"recipient_name"`
	Amount    decimal.Decimal `json:"amount"`
	Product   string          `json:"product_name"`
	Date      string          `json:"date"`
	Code      string          `json:"code"`
}

// PaymentReceipt is returned by POST /promotion-payment/{id}.
type PaymentReceipt struct {
	Code string `json:"code"`
}
