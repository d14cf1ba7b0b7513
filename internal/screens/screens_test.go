package screens

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/yapekuna/internal/api"
	"github.com/hongminglow/yapekuna/internal/form"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
	"github.com/hongminglow/yapekuna/internal/resource"
	"github.com/hongminglow/yapekuna/internal/server"
	"github.com/hongminglow/yapekuna/internal/session"
	"github.com/hongminglow/yapekuna/internal/storage/memory"
)

func fixtureClient(t *testing.T) *api.Client {
	t.Helper()
	store, err := memory.New(memory.DefaultSeed())
	require.NoError(t, err)
	h := server.Routes(store, zerolog.Nop(), server.Options{InitBalance: decimal.NewFromInt(500)})
	return api.New(api.Config{
		AuthURL:       "http://auth.local",
		HistoryURL:    "http://history.local",
		MovementsURL:  "http://movements.local",
		PromotionsURL: "http://promotions.local",
	}, api.WithTransport(api.HandlerTransport(h)))
}

func demoCtx() context.Context {
	return session.NewContext(context.Background(), session.Session{UserID: "1"})
}

func TestDashboardLoadsSummary(t *testing.T) {
	d := NewDashboard(fixtureClient(t), decimal.NewFromInt(500))
	require.NoError(t, d.Mount(demoCtx()))

	snap := d.Summary()
	assert.Equal(t, resource.Ready, snap.State)
	assert.Equal(t, "Juan Perez", snap.Value.Name)
	assert.Equal(t, "1500", snap.Value.Balance.String())
}

func TestDashboardWithoutSessionShowsZero(t *testing.T) {
	d := NewDashboard(fixtureClient(t), decimal.NewFromInt(500))
	require.NoError(t, d.Mount(context.Background()))

	snap := d.Summary()
	assert.Equal(t, resource.Ready, snap.State)
	assert.True(t, snap.Value.Balance.IsZero())
	assert.Empty(t, snap.Value.Name)
}

type flakyAccount struct {
	nameErr error
	release chan struct{}
}

func (f *flakyAccount) Balance(ctx context.Context, _ models.UserID) (decimal.Decimal, error) {
	<-f.release
	return decimal.NewFromInt(10), nil
}

func (f *flakyAccount) DisplayName(context.Context, models.UserID) (string, error) {
	return "", f.nameErr
}

func (f *flakyAccount) Transfer(context.Context, models.UserID, dto.TransferRequest) error {
	return nil
}

func TestDashboardStaysLoadingUntilBothSettle(t *testing.T) {
	acct := &flakyAccount{nameErr: api.ErrUnavailable, release: make(chan struct{})}
	d := NewDashboard(acct, decimal.NewFromInt(500))

	done := make(chan error)
	go func() { done <- d.Mount(demoCtx()) }()

	assert.Eventually(t, func() bool { return d.Summary().State == resource.Loading }, timeout, tick)
	assert.Never(t, func() bool { return d.Summary().State != resource.Loading }, 3*tick, tick)

	close(acct.release)
	require.ErrorIs(t, <-done, api.ErrUnavailable)

	snap := d.Summary()
	assert.Equal(t, resource.Failed, snap.State)
	assert.Equal(t, MsgBalanceUnavailable, snap.Message)
}

func TestDashboardUnmountDropsResult(t *testing.T) {
	acct := &flakyAccount{release: make(chan struct{})}
	d := NewDashboard(acct, decimal.NewFromInt(500))

	done := make(chan error)
	go func() { done <- d.Mount(demoCtx()) }()
	assert.Eventually(t, func() bool { return d.Summary().State == resource.Loading }, timeout, tick)

	d.Unmount()
	close(acct.release)
	require.NoError(t, <-done)
	assert.Equal(t, resource.Loading, d.Summary().State)
}

func TestTransferHistoryMergesNewestFirst(t *testing.T) {
	h := NewTransferHistory(fixtureClient(t))
	require.NoError(t, h.Mount(demoCtx()))

	snap := h.Records()
	require.Equal(t, resource.Ready, snap.State)
	require.Len(t, snap.Value, 4)

	var dates []string
	for _, r := range snap.Value {
		dates = append(dates, r.Date)
		if r.Kind == models.Outgoing {
			assert.True(t, r.Amount.IsNegative())
		} else {
			assert.True(t, r.Amount.IsPositive())
		}
	}
	assert.Equal(t, []string{"2024-09-28", "2024-09-28", "2024-09-27", "2024-09-26"}, dates)
	assert.Equal(t, "Maria Lopez", snap.Value[0].Counterparty)
	assert.Equal(t, "Mikel Bracamonte", snap.Value[1].Counterparty)
}

func TestPaymentsMessages(t *testing.T) {
	c := fixtureClient(t)

	p := NewPayments(c)
	require.NoError(t, p.Mount(demoCtx()))
	assert.Len(t, p.List().Value, 2)

	empty := NewPayments(c)
	ctx := session.NewContext(context.Background(), session.Session{UserID: "2"})
	require.ErrorIs(t, empty.Mount(ctx), api.ErrNoPayments)
	snap := empty.List()
	assert.Equal(t, resource.Failed, snap.State)
	assert.Equal(t, "no payments were found for this account", snap.Message)

	broken := NewPayments(failingPayments{})
	require.ErrorIs(t, broken.Mount(demoCtx()), errBoom)
	assert.Equal(t, MsgPaymentsUnavailable, broken.List().Message)
}

type failingPayments struct{}

func (failingPayments) Payments(context.Context, models.UserID) ([]models.Payment, error) {
	return nil, errBoom
}

func TestPromotionsSelectAndPay(t *testing.T) {
	p := NewPromotions(fixtureClient(t))
	ctx := demoCtx()

	require.NoError(t, p.Mount(ctx))
	list := p.List()
	require.Len(t, list.Value, 2)
	assert.Equal(t, "90", list.Value[0].DiscountedPrice().String())

	require.Error(t, p.Select(ctx, "9"))
	assert.Equal(t, MsgPromotionUnavailable, p.Detail().Message)

	require.NoError(t, p.Select(ctx, "1"))
	_, err := p.Pay(ctx)
	require.ErrorIs(t, err, api.ErrPromotionExpired)
	state, msg, _ := p.PaymentStatus()
	assert.Equal(t, form.Failed, state)
	assert.Equal(t, "the promotion is no longer valid", msg)

	require.NoError(t, p.Select(ctx, "2"))
	assert.Equal(t, "Tienda B", p.Detail().Value.Store)
	code, err := p.Pay(ctx)
	require.NoError(t, err)
	state, msg, got := p.PaymentStatus()
	assert.Equal(t, form.Succeeded, state)
	assert.Empty(t, msg)
	assert.Equal(t, code, got)
}

func TestPromotionsPayRequiresSession(t *testing.T) {
	p := NewPromotions(fixtureClient(t))
	require.NoError(t, p.Select(context.Background(), "2"))

	_, err := p.Pay(context.Background())
	require.Error(t, err)
	_, msg, _ := p.PaymentStatus()
	assert.Equal(t, "you are not logged in", msg)
}

type blockingPromotions struct {
	PromotionsAPI
	started chan struct{}
	release chan struct{}
	calls   int
}

func (b *blockingPromotions) PayPromotion(context.Context, string, models.UserID) (string, error) {
	b.calls++
	close(b.started)
	<-b.release
	return "PROMO1", nil
}

func TestPromotionsPayIsGuardedWhileInFlight(t *testing.T) {
	b := &blockingPromotions{started: make(chan struct{}), release: make(chan struct{})}
	p := NewPromotions(b)
	p.selected = "2"

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = p.Pay(demoCtx())
	}()
	<-b.started

	_, err := p.Pay(demoCtx())
	assert.ErrorIs(t, err, form.ErrBusy)

	close(b.release)
	wg.Wait()
	assert.Equal(t, 1, b.calls)
}

// switchingPromotions blocks the payment of promotion "1" until released.
type switchingPromotions struct {
	started chan struct{}
	release chan struct{}
}

func (s *switchingPromotions) Promotions(context.Context) ([]models.PromotionSummary, error) {
	return nil, nil
}

func (s *switchingPromotions) Promotion(_ context.Context, id string) (models.Promotion, error) {
	return models.Promotion{PromotionSummary: models.PromotionSummary{ID: id}}, nil
}

func (s *switchingPromotions) PayPromotion(_ context.Context, id string, _ models.UserID) (string, error) {
	if id == "1" {
		close(s.started)
		<-s.release
	}
	return "CODE-FOR-" + id, nil
}

func TestPromotionsLatePaymentIgnoredAfterReselect(t *testing.T) {
	fake := &switchingPromotions{started: make(chan struct{}), release: make(chan struct{})}
	p := NewPromotions(fake)
	require.NoError(t, p.Select(context.Background(), "1"))

	done := make(chan string, 1)
	go func() {
		code, _ := p.Pay(demoCtx())
		done <- code
	}()
	<-fake.started

	require.NoError(t, p.Select(context.Background(), "2"))
	close(fake.release)
	assert.Equal(t, "CODE-FOR-1", <-done)

	assert.Equal(t, "2", p.Detail().Value.ID)
	state, msg, code := p.PaymentStatus()
	assert.Equal(t, form.Editing, state)
	assert.Empty(t, msg)
	assert.Empty(t, code)

	code, err := p.Pay(demoCtx())
	require.NoError(t, err)
	assert.Equal(t, "CODE-FOR-2", code)
	_, _, code = p.PaymentStatus()
	assert.Equal(t, "CODE-FOR-2", code)
}

var errBoom = errors.New("boom")
