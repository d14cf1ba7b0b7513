package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrInsufficientBalance indicates the payer cannot cover the amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrExpired indicates a promotion outside its validity window.
var ErrExpired = errors.New("promotion expired")

// ErrStoreNotFound indicates a promotion whose merchant is unknown.
var ErrStoreNotFound = errors.New("store not found")

// AccountStore captures account operations needed by handlers.
type AccountStore interface {
	CreateUser(ctx context.Context, name, phone string, balance decimal.Decimal) (models.User, error)
	FindByPhone(ctx context.Context, phone string) (models.User, error)
	FindUser(ctx context.Context, id models.UserID) (models.User, error)
	Balance(ctx context.Context, id models.UserID) (decimal.Decimal, error)
}

// TransferStore moves money between accounts and lists the history.
type TransferStore interface {
	// Transfer fails with ErrNotFound for an unknown recipient phone and
	// ErrInsufficientBalance when the sender cannot cover amount.
	Transfer(ctx context.Context, from models.UserID, toPhone string, amount decimal.Decimal, description string, at time.Time) error
	Outgoing(ctx context.Context, id models.UserID) ([]models.OutgoingTransfer, error)
	Incoming(ctx context.Context, id models.UserID) ([]models.IncomingTransfer, error)
}

// PromotionStore serves the catalogue and promotion payments.
type PromotionStore interface {
	Promotions(ctx context.Context) ([]models.PromotionSummary, error)
	Promotion(ctx context.Context, id string) (models.Promotion, error)
	// PayPromotion charges the discounted price to payer and records the payment under code.
	PayPromotion(ctx context.Context, promotionID string, payer models.UserID, code string, at time.Time) (models.Payment, error)
	Payments(ctx context.Context, id models.UserID) ([]models.Payment, error)
}

// Store is everything the fixture backend persists.
type Store interface {
	AccountStore
	TransferStore
	PromotionStore
}
