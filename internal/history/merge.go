// Package history turns the two raw transfer lists into the single signed,
// newest-first list the transfer history screen renders.
package history

import (
	"sort"
	"strings"
	"time"

	"github.com/hongminglow/yapekuna/internal/models"
)

var layouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// Merge tags each record with its direction, negates outgoing amounts, and
// sorts the concatenation by date, most recent first. Records with equal
// dates keep their input order (outgoing before incoming). Dates that cannot
// be parsed sort as the oldest.
func Merge(outgoing []models.OutgoingTransfer, incoming []models.IncomingTransfer) []models.TransferRecord {
	records := make([]models.TransferRecord, 0, len(outgoing)+len(incoming))
	for _, o := range outgoing {
		records = append(records, models.TransferRecord{
			Counterparty: o.RecipientName,
			Amount:       o.Amount.Abs().Neg(),
			Date:         o.Date,
			Description:  o.Description,
			Kind:         models.Outgoing,
		})
	}
	for _, in := range incoming {
		records = append(records, models.TransferRecord{
			Counterparty: in.SenderName,
			Amount:       in.Amount.Abs(),
			Date:         in.Date,
			Description:  in.Description,
			Kind:         models.Incoming,
		})
	}

	keys := make([]time.Time, len(records))
	for i, r := range records {
		keys[i] = parseDate(r.Date)
	}
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].After(keys[idx[b]])
	})

	sorted := make([]models.TransferRecord, len(records))
	for i, j := range idx {
		sorted[i] = records[j]
	}
	return sorted
}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
