package models

import "github.com/shopspring/decimal"

// OutgoingTransfer is money the current user sent, as returned by the history service.
type OutgoingTransfer struct {
	RecipientName string          `json:"recipient_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
}

// IncomingTransfer is money the current user received.
type IncomingTransfer struct {
	SenderName  string          `json:"sender_name"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// TransferKind tags the direction of a merged history record.
type TransferKind string

const (
	Incoming TransferKind = "incoming"
	Outgoing TransferKind = "outgoing"
)

// TransferRecord is one row of the merged transfer history.
// Amount is signed: negative for outgoing, positive for incoming.
type TransferRecord struct {
	Counterparty string          `json:"counterparty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Kind         TransferKind    `json:"kind"`
}
