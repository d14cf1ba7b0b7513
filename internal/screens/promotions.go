package screens

import (
	"context"
	"errors"
	"sync"

	"github.com/hongminglow/yapekuna/internal/form"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/resource"
	"github.com/hongminglow/yapekuna/internal/session"
)

// Promotions shows the catalogue, the detail of the selected promotion and
// the payment of it.
type Promotions struct {
	api     PromotionsAPI
	list    *resource.Resource[[]models.PromotionSummary]
	detail  *resource.Resource[models.Promotion]
	payment *form.Form

	mu       sync.Mutex
	selected string
	// picks counts selections; a payment settles only if none happened since it started.
	picks uint64
	code  string
}

func NewPromotions(api PromotionsAPI) *Promotions {
	return &Promotions{
		api:     api,
		list:    resource.New[[]models.PromotionSummary](MsgPromotionsUnavailable),
		detail:  resource.New[models.Promotion](MsgPromotionUnavailable),
		payment: form.New(nil),
	}
}

func (p *Promotions) Mount(ctx context.Context) error {
	return p.list.Load(ctx, p.api.Promotions)
}

func (p *Promotions) Unmount() {
	p.list.Unmount()
	p.detail.Unmount()
}

// Select loads the detail of one promotion and forgets any previous payment.
func (p *Promotions) Select(ctx context.Context, id string) error {
	p.mu.Lock()
	p.selected = id
	p.picks++
	p.code = ""
	p.mu.Unlock()
	p.payment.Reset()

	return p.detail.Load(ctx, func(ctx context.Context) (models.Promotion, error) {
		return p.api.Promotion(ctx, id)
	})
}

// Pay pays the selected promotion as the user carried by ctx and returns the
// confirmation code. A second call while one is in flight fails with form.ErrBusy.
// A payment that finishes after another promotion was selected returns its
// result but leaves the payment status of the new selection untouched.
func (p *Promotions) Pay(ctx context.Context) (string, error) {
	p.mu.Lock()
	id, pick := p.selected, p.picks
	p.mu.Unlock()

	var code string
	err := p.payment.Submit(ctx, func(ctx context.Context, _ form.Values) error {
		s, ok := session.FromContext(ctx)
		if !ok {
			return form.Reject(session.ErrNoSession.Error())
		}
		if id == "" {
			return form.Reject("select a promotion first")
		}
		var err error
		code, err = p.api.PayPromotion(ctx, id, s.UserID)
		return err
	})

	p.mu.Lock()
	stale := p.picks != pick
	if !stale && err == nil {
		p.code = code
	}
	p.mu.Unlock()
	if stale && !errors.Is(err, form.ErrBusy) {
		p.payment.Reset()
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (p *Promotions) List() resource.Snapshot[[]models.PromotionSummary] { return p.list.Snapshot() }

func (p *Promotions) Detail() resource.Snapshot[models.Promotion] { return p.detail.Snapshot() }

// PaymentStatus reports the last payment attempt: its state, the failure
// message if it failed, and the confirmation code if it succeeded.
func (p *Promotions) PaymentStatus() (form.State, string, string) {
	view := p.payment.View()
	p.mu.Lock()
	defer p.mu.Unlock()
	return view.State, view.Message, p.code
}
