package screens

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/yapekuna/internal/api"
	"github.com/hongminglow/yapekuna/internal/form"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/session"
)

const (
	timeout = time.Second
	tick    = 10 * time.Millisecond
)

func newAuthenticator(t *testing.T) (*session.Authenticator, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	return session.NewAuthenticator(fixtureClient(t), store, zerolog.Nop()), store
}

func TestLoginFormValidation(t *testing.T) {
	a, _ := newAuthenticator(t)
	f := NewLoginForm(a)

	cases := map[string]string{
		"":           "phone is required",
		"12345":      "phone must be a valid 9-digit number",
		"12345678a":  "phone must be a valid 9-digit number",
		"1234567890": "phone must be a valid 9-digit number",
	}
	for value, want := range cases {
		f.Change(FieldPhone, value)
		route, err := f.Submit(context.Background())
		require.ErrorIs(t, err, form.ErrInvalid)
		assert.Equal(t, RouteLogin, route)
		assert.Equal(t, want, f.View().Errors[FieldPhone], "value %q", value)
	}
}

func TestLoginFormSuccessStoresSession(t *testing.T) {
	a, store := newAuthenticator(t)
	f := NewLoginForm(a)
	f.Change(FieldPhone, "999888777")

	route, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, route)

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.UserID("1"), s.UserID)
	assert.Empty(t, f.View().Values)
}

func TestLoginFormUnknownPhone(t *testing.T) {
	a, store := newAuthenticator(t)
	f := NewLoginForm(a)
	f.Change(FieldPhone, "999999999")

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, api.ErrPhoneNotFound)

	view := f.View()
	assert.Equal(t, form.Failed, view.State)
	assert.Equal(t, "no account exists for that phone", view.Message)
	assert.Equal(t, "999999999", view.Values[FieldPhone])

	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestRegisterFormValidation(t *testing.T) {
	a, _ := newAuthenticator(t)
	f := NewRegisterForm(a)

	f.Change(FieldName, "Ana 2")
	f.Change(FieldPhone, "12ab")
	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrInvalid)
	assert.Equal(t, form.Errors{
		FieldName:  "name must contain only letters",
		FieldPhone: "phone must contain only digits",
	}, f.View().Errors)

	f.Change(FieldName, "")
	f.Change(FieldPhone, "1234")
	_, err = f.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrInvalid)
	assert.Equal(t, form.Errors{
		FieldName:  "name is required",
		FieldPhone: "phone must have 9 digits",
	}, f.View().Errors)
}

func TestRegisterFormRoutesToLogin(t *testing.T) {
	a, store := newAuthenticator(t)
	f := NewRegisterForm(a)
	f.Change(FieldName, "Ana Diaz")
	f.Change(FieldPhone, "911111111")

	route, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RouteLogin, route)
	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	f.Change(FieldName, "Ana Diaz")
	f.Change(FieldPhone, "911111111")
	route, err = f.Submit(context.Background())
	require.ErrorIs(t, err, api.ErrAccountExists)
	assert.Equal(t, RouteRegister, route)
	assert.Equal(t, "an account already exists for that phone", f.View().Message)
}

func TestTransferFormValidation(t *testing.T) {
	f := NewTransferForm(fixtureClient(t), decimal.NewFromInt(500))
	cases := map[string]string{
		"abc":    "amount must be a number",
		"0":      "amount must be greater than 0",
		"-5":     "amount must be greater than 0",
		"500.01": "amount cannot exceed 500",
	}
	f.Change(FieldRecipient, "987654321")
	f.Change(FieldDescription, "lunch")
	for value, want := range cases {
		f.Change(FieldAmount, value)
		require.ErrorIs(t, f.Submit(demoCtx()), form.ErrInvalid)
		assert.Equal(t, want, f.View().Errors[FieldAmount], "amount %q", value)
	}
}

func fillTransfer(f *TransferForm, recipient, amount string) {
	f.Change(FieldRecipient, recipient)
	f.Change(FieldAmount, amount)
	f.Change(FieldDescription, "lunch")
}

func TestTransferFormOutcomes(t *testing.T) {
	d := NewDashboard(fixtureClient(t), decimal.NewFromInt(500))
	ctx := demoCtx()

	fillTransfer(d.Transfer, "900000000", "50")
	require.ErrorIs(t, d.SubmitTransfer(ctx), api.ErrRecipientNotFound)
	assert.Equal(t, "recipient does not exist", d.Transfer.View().Message)
	assert.Equal(t, "900000000", d.Transfer.Value(FieldRecipient))

	fillTransfer(d.Transfer, "987654321", "50")
	require.NoError(t, d.SubmitTransfer(ctx))
	assert.Equal(t, form.Succeeded, d.Transfer.View().State)
	assert.Empty(t, d.Transfer.View().Values)
	assert.Equal(t, "1450", d.Summary().Value.Balance.String())
}

func TestTransferFormRequiresSession(t *testing.T) {
	f := NewTransferForm(fixtureClient(t), decimal.NewFromInt(500))
	fillTransfer(f, "987654321", "50")

	require.Error(t, f.Submit(context.Background()))
	assert.Equal(t, "you are not logged in", f.View().Message)
}
