package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/yapekuna/internal/api"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/resource"
	"github.com/hongminglow/yapekuna/internal/server"
	"github.com/hongminglow/yapekuna/internal/session"
	"github.com/hongminglow/yapekuna/internal/storage/memory"
)

func newUI(t *testing.T, input string) (*UI, *bytes.Buffer, *session.MemoryStore) {
	t.Helper()
	store, err := memory.New(memory.DefaultSeed())
	require.NoError(t, err)
	client := api.New(api.Config{
		AuthURL:       "http://auth.local",
		HistoryURL:    "http://history.local",
		MovementsURL:  "http://movements.local",
		PromotionsURL: "http://promotions.local",
	}, api.WithTransport(api.HandlerTransport(server.Routes(store, zerolog.Nop(), server.Options{}))))

	sessions := session.NewMemoryStore()
	auth := session.NewAuthenticator(client, sessions, zerolog.Nop())
	var out bytes.Buffer
	ui := NewUI(client, auth, decimal.NewFromInt(500), bufio.NewReader(strings.NewReader(input)), &out, zerolog.Nop())
	return ui, &out, sessions
}

func TestLoginShowsDashboard(t *testing.T) {
	ui, out, sessions := newUI(t, "2\n999888777\n")
	require.NoError(t, ui.Run(context.Background()))

	assert.Contains(t, out.String(), "Hello, Juan Perez")
	assert.Contains(t, out.String(), "Balance: S/. 1500.00")
	_, err := sessions.Load()
	assert.NoError(t, err)
}

func TestLoginValidationAndUnknownPhone(t *testing.T) {
	ui, out, _ := newUI(t, "2\n123\n2\n999999999\n0\n")
	require.NoError(t, ui.Run(context.Background()))

	assert.Contains(t, out.String(), "phone must be a valid 9-digit number")
	assert.Contains(t, out.String(), "no account exists for that phone")
}

func TestRegisterThenLogin(t *testing.T) {
	ui, out, _ := newUI(t, "1\nAna Diaz\n911111111\n2\n911111111\n")
	require.NoError(t, ui.Run(context.Background()))

	assert.Contains(t, out.String(), "Account created")
	assert.Contains(t, out.String(), "Hello, Ana Diaz")
}

func TestSessionMenuFlows(t *testing.T) {
	input := strings.Join([]string{
		"2", "999888777",
		"2", "987654321", "50", "lunch",
		"3",
		"4",
		"5", "1", "y", "2", "y", "",
		"0",
		"0",
	}, "\n") + "\n"
	ui, out, sessions := newUI(t, input)
	require.NoError(t, ui.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Transfer sent.")
	assert.Contains(t, got, "Balance: S/. 1450.00")
	assert.Contains(t, got, "-S/. 500.00")
	assert.Contains(t, got, "+S/. 400.00")
	assert.Contains(t, got, "code PROMO123")
	assert.Contains(t, got, "Tienda A - Producto 1")
	assert.Contains(t, got, "the promotion is no longer valid")
	assert.Contains(t, got, "Paid. Show this code at the store: PROMO")

	_, err := sessions.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestStoredSessionSkipsLogin(t *testing.T) {
	ui, out, sessions := newUI(t, "0\n0\n")
	_, err := sessions.Save("1")
	require.NoError(t, err)

	require.NoError(t, ui.Run(context.Background()))
	assert.Contains(t, out.String(), "Hello, Juan Perez")
	assert.NotContains(t, out.String(), "=== Log in ===")
}

func TestHeadingsHaveNoPaddedBlankLines(t *testing.T) {
	ui, out, _ := newUI(t, "2\n999888777\n0\n0\n")
	require.NoError(t, ui.Run(context.Background()))

	for _, line := range strings.Split(out.String(), "\n") {
		if line != "" {
			assert.NotEmpty(t, strings.TrimSpace(line), "line of only spaces")
		}
	}
	assert.Contains(t, out.String(), "\n=== Menu ===\n")
}

func TestRenderIsDeterministic(t *testing.T) {
	ui, _, _ := newUI(t, "")
	snap := resource.Snapshot[[]models.TransferRecord]{
		State: resource.Ready,
		Value: []models.TransferRecord{
			{Counterparty: "Michael Hinojosa", Amount: decimal.NewFromInt(400), Date: "2024-09-28", Kind: models.Incoming},
			{Counterparty: "Juan Perez", Amount: decimal.NewFromInt(-500), Date: "2024-09-27", Kind: models.Outgoing},
		},
	}

	var a, b bytes.Buffer
	ui.renderTransfers(&a, snap)
	ui.renderTransfers(&b, snap)
	assert.Equal(t, a.String(), b.String())
	assert.Less(t, strings.Index(a.String(), "Michael Hinojosa"), strings.Index(a.String(), "Juan Perez"))
}

func TestRenderFailureShowsOnlyMessage(t *testing.T) {
	ui, _, _ := newUI(t, "")
	var buf bytes.Buffer
	ui.renderPayments(&buf, resource.Snapshot[[]models.Payment]{State: resource.Failed, Message: "could not load your payments"})
	assert.Contains(t, buf.String(), "could not load your payments")
	assert.NotContains(t, buf.String(), "code")
}
