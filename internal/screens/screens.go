// Package screens holds the state behind each view of the app. Screens read
// the logged-in user from the context and talk to the backend only through
// the narrow interfaces below, all satisfied by *api.Client.
package screens

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
	"github.com/hongminglow/yapekuna/internal/session"
)

// Route names a view the front end can show next.
type Route int

const (
	RouteLogin Route = iota
	RouteRegister
	RouteDashboard
	RouteTransfers
	RoutePayments
	RoutePromotions
)

// Fallback messages for failures that carry no business meaning.
const (
	MsgBalanceUnavailable    = "could not load your balance"
	MsgTransfersUnavailable  = "could not load your transfers"
	MsgPaymentsUnavailable   = "could not load your payments"
	MsgPromotionsUnavailable = "could not load promotions"
	MsgPromotionUnavailable  = "could not load the promotion details"
)

type AccountAPI interface {
	Balance(ctx context.Context, id models.UserID) (decimal.Decimal, error)
	DisplayName(ctx context.Context, id models.UserID) (string, error)
}

type TransferAPI interface {
	Transfer(ctx context.Context, sender models.UserID, req dto.TransferRequest) error
}

type HistoryAPI interface {
	OutgoingTransfers(ctx context.Context, id models.UserID) ([]models.OutgoingTransfer, error)
	IncomingTransfers(ctx context.Context, id models.UserID) ([]models.IncomingTransfer, error)
}

type PaymentsAPI interface {
	Payments(ctx context.Context, id models.UserID) ([]models.Payment, error)
}

type PromotionsAPI interface {
	Promotions(ctx context.Context) ([]models.PromotionSummary, error)
	Promotion(ctx context.Context, id string) (models.Promotion, error)
	PayPromotion(ctx context.Context, promotionID string, payer models.UserID) (string, error)
}

// Authenticator is the session boundary as seen by the login and register forms.
type Authenticator interface {
	Login(ctx context.Context, phone string) (session.Session, error)
	Register(ctx context.Context, name, phone string) error
}
