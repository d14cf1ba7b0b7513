package screens

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/form"
	"github.com/hongminglow/yapekuna/internal/models/dto"
	"github.com/hongminglow/yapekuna/internal/session"
)

const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldRecipient   = "recipient"
	FieldAmount      = "amount"
	FieldDescription = "description"
)

var loginPhone = regexp.MustCompile(`^[0-9]{9}$`)

// LoginForm logs in by phone number.
type LoginForm struct {
	*form.Form
	auth Authenticator
}

func NewLoginForm(auth Authenticator) *LoginForm {
	return &LoginForm{
		Form: form.New(form.Schema{
			FieldPhone: {
				form.Required("phone is required"),
				form.Matches(loginPhone, "phone must be a valid 9-digit number"),
			},
		}),
		auth: auth,
	}
}

// Submit logs in and, on success, routes to the dashboard.
func (f *LoginForm) Submit(ctx context.Context) (Route, error) {
	err := f.Form.Submit(ctx, func(ctx context.Context, v form.Values) error {
		_, err := f.auth.Login(ctx, strings.TrimSpace(v[FieldPhone]))
		return err
	})
	if err != nil {
		return RouteLogin, err
	}
	return RouteDashboard, nil
}

// RegisterForm creates an account. It does not log the user in.
type RegisterForm struct {
	*form.Form
	auth Authenticator
}

func NewRegisterForm(auth Authenticator) *RegisterForm {
	return &RegisterForm{
		Form: form.New(form.Schema{
			FieldName: {
				form.Required("name is required"),
				form.Letters("name must contain only letters"),
			},
			FieldPhone: {
				form.Required("phone is required"),
				form.Digits("phone must contain only digits"),
				form.Length(9, "phone must have 9 digits"),
			},
		}),
		auth: auth,
	}
}

// Submit registers the account and, on success, routes to the login screen.
func (f *RegisterForm) Submit(ctx context.Context) (Route, error) {
	err := f.Form.Submit(ctx, func(ctx context.Context, v form.Values) error {
		return f.auth.Register(ctx, strings.TrimSpace(v[FieldName]), strings.TrimSpace(v[FieldPhone]))
	})
	if err != nil {
		return RouteRegister, err
	}
	return RouteLogin, nil
}

// TransferForm sends money to another account by phone number.
type TransferForm struct {
	*form.Form
	api TransferAPI
}

// NewTransferForm caps the amount of a single transfer at limit.
func NewTransferForm(api TransferAPI, limit decimal.Decimal) *TransferForm {
	return &TransferForm{
		Form: form.New(form.Schema{
			FieldRecipient: {form.Required("recipient is required")},
			FieldAmount: {
				form.Required("amount is required"),
				form.Number("amount must be a number"),
				form.Positive("amount must be greater than 0"),
				form.AtMost(limit, "amount cannot exceed "+limit.String()),
			},
			FieldDescription: {form.Required("description is required")},
		}),
		api: api,
	}
}

// Submit sends the transfer from the user carried by ctx.
func (f *TransferForm) Submit(ctx context.Context) error {
	return f.Form.Submit(ctx, func(ctx context.Context, v form.Values) error {
		s, ok := session.FromContext(ctx)
		if !ok {
			return form.Reject(session.ErrNoSession.Error())
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(v[FieldAmount]))
		if err != nil {
			return err
		}
		return f.api.Transfer(ctx, s.UserID, dto.TransferRequest{
			Recipient:   strings.TrimSpace(v[FieldRecipient]),
			Amount:      amount,
			Description: strings.TrimSpace(v[FieldDescription]),
		})
	})
}
