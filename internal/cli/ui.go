package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/form"
	"github.com/hongminglow/yapekuna/internal/screens"
)

// Backend is every call the screens make. *api.Client satisfies it.
type Backend interface {
	screens.DashboardAPI
	screens.HistoryAPI
	screens.PaymentsAPI
	screens.PromotionsAPI
}

// Sessions is the login boundary. *session.Authenticator satisfies it.
type Sessions interface {
	screens.Authenticator
	Logout() error
	Current(ctx context.Context) (context.Context, error)
}

type Mode int

const (
	ModeExit Mode = iota
	ModeRegister
	ModeLogin
)

type UI struct {
	backend     Backend
	sessions    Sessions
	transferMax decimal.Decimal
	in          *bufio.Reader
	out         io.Writer
	style       styles
	logger      zerolog.Logger
	eof         bool
}

func NewUI(backend Backend, sessions Sessions, transferMax decimal.Decimal, in *bufio.Reader, out io.Writer, logger zerolog.Logger) *UI {
	return &UI{
		backend:     backend,
		sessions:    sessions,
		transferMax: transferMax,
		in:          in,
		out:         out,
		style:       newStyles(out),
		logger:      logger,
	}
}

// Run drives the app until the user exits or input ends. A stored session
// skips the login menu.
func (ui *UI) Run(ctx context.Context) error {
	for !ui.eof && ctx.Err() == nil {
		userCtx, err := ui.sessions.Current(ctx)
		if err == nil {
			ui.HandleSession(userCtx)
			continue
		}
		switch ui.SelectMode() {
		case ModeRegister:
			ui.HandleRegister(ctx)
		case ModeLogin:
			ui.HandleLogin(ctx)
		default:
			return nil
		}
	}
	return ctx.Err()
}

func (ui *UI) SelectMode() Mode {
	ui.heading("Yapekuna")
	fmt.Fprintln(ui.out, "1) Register")
	fmt.Fprintln(ui.out, "2) Log in")
	fmt.Fprintln(ui.out, "0) Exit")
	fmt.Fprint(ui.out, "> ")
	switch strings.TrimSpace(ui.readLine()) {
	case "1":
		return ModeRegister
	case "2":
		return ModeLogin
	default:
		return ModeExit
	}
}

func (ui *UI) HandleRegister(ctx context.Context) {
	ui.heading("=== Register ===")
	f := screens.NewRegisterForm(ui.sessions)
	ui.fill(f.Form, []prompt{{screens.FieldName, "Name: "}, {screens.FieldPhone, "Phone: "}})
	if ui.eof {
		return
	}
	if _, err := f.Submit(ctx); err != nil {
		ui.formFailure(f.Form, err)
		return
	}
	fmt.Fprintln(ui.out, ui.style.ok.Render("Account created. You can log in now."))
}

func (ui *UI) HandleLogin(ctx context.Context) {
	ui.heading("=== Log in ===")
	f := screens.NewLoginForm(ui.sessions)
	ui.fill(f.Form, []prompt{{screens.FieldPhone, "Phone: "}})
	if ui.eof {
		return
	}
	if _, err := f.Submit(ctx); err != nil {
		ui.formFailure(f.Form, err)
	}
}

// HandleSession shows the logged-in menu until logout or end of input.
func (ui *UI) HandleSession(ctx context.Context) {
	dash := screens.NewDashboard(ui.backend, ui.transferMax)
	defer dash.Unmount()
	ui.showDashboard(ctx, dash)

	for !ui.eof {
		ui.heading("=== Menu ===")
		fmt.Fprintln(ui.out, "1) Refresh balance")
		fmt.Fprintln(ui.out, "2) Transfer")
		fmt.Fprintln(ui.out, "3) Transfer history")
		fmt.Fprintln(ui.out, "4) Payments")
		fmt.Fprintln(ui.out, "5) Promotions")
		fmt.Fprintln(ui.out, "0) Log out")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			ui.showDashboard(ctx, dash)
		case "2":
			ui.transfer(ctx, dash)
		case "3":
			ui.transfers(ctx)
		case "4":
			ui.payments(ctx)
		case "5":
			ui.promotions(ctx)
		case "0":
			if err := ui.sessions.Logout(); err != nil {
				ui.logger.Error().Err(err).Msg("logout")
				fmt.Fprintln(ui.out, ui.style.err.Render("could not log out"))
				continue
			}
			return
		}
	}
}

func (ui *UI) showDashboard(ctx context.Context, dash *screens.Dashboard) {
	_ = dash.Mount(ctx)
	ui.renderSummary(ui.out, dash.Summary())
}

func (ui *UI) transfer(ctx context.Context, dash *screens.Dashboard) {
	ui.heading("=== Transfer ===")
	dash.Transfer.Reset()
	ui.fill(dash.Transfer.Form, []prompt{
		{screens.FieldRecipient, "Recipient phone: "},
		{screens.FieldAmount, "Amount: "},
		{screens.FieldDescription, "Description: "},
	})
	if ui.eof {
		return
	}
	if err := dash.SubmitTransfer(ctx); err != nil {
		ui.formFailure(dash.Transfer.Form, err)
		return
	}
	fmt.Fprintln(ui.out, ui.style.ok.Render("Transfer sent."))
	ui.renderSummary(ui.out, dash.Summary())
}

func (ui *UI) transfers(ctx context.Context) {
	h := screens.NewTransferHistory(ui.backend)
	defer h.Unmount()
	_ = h.Mount(ctx)
	ui.renderTransfers(ui.out, h.Records())
}

func (ui *UI) payments(ctx context.Context) {
	p := screens.NewPayments(ui.backend)
	defer p.Unmount()
	_ = p.Mount(ctx)
	ui.renderPayments(ui.out, p.List())
}

func (ui *UI) promotions(ctx context.Context) {
	p := screens.NewPromotions(ui.backend)
	defer p.Unmount()
	if err := p.Mount(ctx); err != nil {
		ui.renderPromotions(ui.out, p.List())
		return
	}

	for !ui.eof {
		ui.renderPromotions(ui.out, p.List())
		fmt.Fprint(ui.out, "Promotion id (empty to go back): ")
		id := strings.TrimSpace(ui.readLine())
		if id == "" {
			return
		}
		if err := p.Select(ctx, id); err != nil {
			ui.renderPromotion(ui.out, p.Detail())
			continue
		}
		ui.renderPromotion(ui.out, p.Detail())

		fmt.Fprint(ui.out, "Pay this promotion? (y/N): ")
		if !strings.EqualFold(strings.TrimSpace(ui.readLine()), "y") {
			continue
		}
		code, err := p.Pay(ctx)
		if err != nil {
			_, msg, _ := p.PaymentStatus()
			fmt.Fprintln(ui.out, ui.style.err.Render(msg))
			continue
		}
		fmt.Fprintln(ui.out, ui.style.ok.Render("Paid. Show this code at the store: "+code))
	}
}

type prompt struct {
	field string
	label string
}

func (ui *UI) fill(f *form.Form, prompts []prompt) {
	for _, p := range prompts {
		fmt.Fprint(ui.out, p.label)
		value := ui.readLine()
		if ui.eof {
			return
		}
		f.Change(p.field, strings.TrimSpace(value))
		f.Blur(p.field)
	}
}

func (ui *UI) formFailure(f *form.Form, err error) {
	view := f.View()
	if errors.Is(err, form.ErrInvalid) {
		fields := make([]string, 0, len(view.Errors))
		for field := range view.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintln(ui.out, ui.style.err.Render(view.Errors[field]))
		}
		return
	}
	fmt.Fprintln(ui.out, ui.style.err.Render(view.Message))
}

func (ui *UI) readLine() string {
	line, err := ui.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			ui.logger.Error().Err(err).Msg("read input")
		}
		if line == "" {
			ui.eof = true
		}
	}
	return strings.TrimRight(line, "\r\n")
}

// heading prints a blank line then a styled title; the blank line stays outside
// Render so it is not padded to the title width.
func (ui *UI) heading(text string) {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, ui.style.title.Render(text))
}
