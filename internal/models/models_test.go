package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDDecodesNumbersAndStrings(t *testing.T) {
	for _, body := range []string{`{"id": 1}`, `{"id": "1"}`} {
		var out Identity
		require.NoError(t, json.Unmarshal([]byte(body), &out), body)
		assert.Equal(t, UserID("1"), out.ID)
	}

	var null Identity
	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &null))
	assert.True(t, null.ID.IsZero())

	var bad Identity
	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &bad))
}

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		price, discount, want string
	}{
		{"100", "10", "90.00"},
		{"200", "20", "160.00"},
		{"19.99", "15", "16.99"},
		{"50", "0", "50.00"},
	}
	for _, tc := range cases {
		p := PromotionSummary{Price: decimal.RequireFromString(tc.price), Discount: decimal.RequireFromString(tc.discount)}
		assert.Equal(t, tc.want, p.DiscountedPrice().StringFixed(2), "%s at %s%%", tc.price, tc.discount)
	}
}
