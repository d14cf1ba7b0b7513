package cli

import (
	"fmt"
	"io"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/resource"
	"github.com/hongminglow/yapekuna/internal/screens"
)

// The render functions draw a screen snapshot. The same snapshot always
// produces the same output.

func (ui *UI) renderSummary(w io.Writer, snap resource.Snapshot[screens.Summary]) {
	fmt.Fprintln(w, ui.style.title.Render("=== Dashboard ==="))
	switch snap.State {
	case resource.Ready:
		if snap.Value.Name != "" {
			fmt.Fprintf(w, "Hello, %s\n", snap.Value.Name)
		}
		fmt.Fprintf(w, "Balance: %s\n", formatMoney(snap.Value.Balance))
	case resource.Failed:
		fmt.Fprintln(w, ui.style.err.Render(snap.Message))
	default:
		fmt.Fprintln(w, ui.style.muted.Render("loading..."))
	}
}

func (ui *UI) renderTransfers(w io.Writer, snap resource.Snapshot[[]models.TransferRecord]) {
	fmt.Fprintln(w, ui.style.title.Render("=== Transfers ==="))
	if snap.State == resource.Failed {
		fmt.Fprintln(w, ui.style.err.Render(snap.Message))
		return
	}
	if len(snap.Value) == 0 {
		fmt.Fprintln(w, ui.style.muted.Render("no transfers yet"))
		return
	}
	for _, r := range snap.Value {
		direction := "to"
		if r.Kind == models.Incoming {
			direction = "from"
		}
		fmt.Fprintf(w, "%s  %-4s %-20s %s  %s\n", r.Date, direction, r.Counterparty, ui.style.formatSigned(r.Amount), r.Description)
	}
}

func (ui *UI) renderPayments(w io.Writer, snap resource.Snapshot[[]models.Payment]) {
	fmt.Fprintln(w, ui.style.title.Render("=== Payments ==="))
	if snap.State == resource.Failed {
		fmt.Fprintln(w, ui.style.err.Render(snap.Message))
		return
	}
	for _, p := range snap.Value {
		fmt.Fprintf(w, "%s  %-12s %-12s %s  code %s\n", p.Date, p.Recipient, p.Product, formatMoney(p.Amount), p.Code)
	}
}

func (ui *UI) renderPromotions(w io.Writer, snap resource.Snapshot[[]models.PromotionSummary]) {
	fmt.Fprintln(w, ui.style.title.Render("=== Promotions ==="))
	if snap.State == resource.Failed {
		fmt.Fprintln(w, ui.style.err.Render(snap.Message))
		return
	}
	if len(snap.Value) == 0 {
		fmt.Fprintln(w, ui.style.muted.Render("no promotions available"))
		return
	}
	for _, p := range snap.Value {
		fmt.Fprintf(w, "%s) %s - %s  %s%% off  %s %s\n",
			p.ID, p.Store, p.Product, p.Discount.String(),
			ui.style.muted.Render(formatMoney(p.Price)), formatMoney(p.DiscountedPrice()))
	}
}

func (ui *UI) renderPromotion(w io.Writer, snap resource.Snapshot[models.Promotion]) {
	if snap.State == resource.Failed {
		fmt.Fprintln(w, ui.style.err.Render(snap.Message))
		return
	}
	p := snap.Value
	fmt.Fprintln(w, ui.style.title.Render(p.Store+" - "+p.Product))
	fmt.Fprintln(w, p.Description)
	fmt.Fprintf(w, "Price: %s (%s%% off, was %s)\n", formatMoney(p.DiscountedPrice()), p.Discount.String(), formatMoney(p.Price))
	fmt.Fprintf(w, "Valid: %s to %s\n", p.ValidFrom, p.ValidUntil)
}
