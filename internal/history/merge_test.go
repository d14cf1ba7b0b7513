package history

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/yapekuna/internal/models"
)

func amount(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestMergeOrdersNewestFirstAndSignsOutgoing(t *testing.T) {
	out := []models.OutgoingTransfer{{RecipientName: "Juan Perez", Amount: amount(500), Date: "2024-09-27"}}
	in := []models.IncomingTransfer{{SenderName: "Michael Hinojosa", Amount: amount(400), Date: "2024-09-28"}}

	got := Merge(out, in)
	require.Len(t, got, 2)

	assert.Equal(t, models.Incoming, got[0].Kind)
	assert.Equal(t, "2024-09-28", got[0].Date)
	assert.Equal(t, "Michael Hinojosa", got[0].Counterparty)
	assert.True(t, amount(400).Equal(got[0].Amount))

	assert.Equal(t, models.Outgoing, got[1].Kind)
	assert.Equal(t, "2024-09-27", got[1].Date)
	assert.True(t, amount(-500).Equal(got[1].Amount))
}

func TestMergeKeepsInputOrderOnTies(t *testing.T) {
	out := []models.OutgoingTransfer{
		{RecipientName: "Juan Perez", Amount: amount(500), Date: "2024-09-27"},
		{RecipientName: "Maria Lopez", Amount: amount(300), Date: "2024-09-28"},
	}
	in := []models.IncomingTransfer{
		{SenderName: "Michael Hinojosa", Amount: amount(400), Date: "2024-09-26"},
		{SenderName: "Mikel Bracamonte", Amount: amount(200), Date: "2024-09-28"},
	}

	got := Merge(out, in)
	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Counterparty
	}
	assert.Equal(t, []string{"Maria Lopez", "Mikel Bracamonte", "Juan Perez", "Michael Hinojosa"}, names)
}

func TestMergeEdgeCases(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))

	got := Merge(
		[]models.OutgoingTransfer{{RecipientName: "bad date", Amount: amount(1), Date: "yesterday"}},
		[]models.IncomingTransfer{{SenderName: "rfc", Amount: amount(2), Date: "2024-01-01T10:00:00Z"}},
	)
	require.Len(t, got, 2)
	assert.Equal(t, "rfc", got[0].Counterparty)
	assert.Equal(t, "bad date", got[1].Counterparty)
}

func TestMergeIsDeterministic(t *testing.T) {
	out := []models.OutgoingTransfer{{RecipientName: "A", Amount: amount(5), Date: "2024-09-27"}}
	in := []models.IncomingTransfer{{SenderName: "B", Amount: amount(6), Date: "2024-09-27"}}
	assert.Equal(t, Merge(out, in), Merge(out, in))
}
