package api

import "errors"

// Kind classifies a failed API call.
type Kind int

const (
	// KindUnavailable covers transport faults, unrecognised statuses and unreadable bodies.
	KindUnavailable Kind = iota
	// KindServer covers 5xx responses with no business meaning.
	KindServer
	KindAccountExists
	KindPhoneNotFound
	KindRecipientNotFound
	KindInsufficientBalance
	KindPromotionExpired
	KindStoreNotFound
	KindPromotionNotFound
	KindNoPayments
)

var messages = map[Kind]string{
	KindUnavailable:         "could not reach the server",
	KindServer:              "server error, please try again later",
	KindAccountExists:       "an account already exists for that phone",
	KindPhoneNotFound:       "no account exists for that phone",
	KindRecipientNotFound:   "recipient does not exist",
	KindInsufficientBalance: "you do not have enough balance",
	KindPromotionExpired:    "the promotion is no longer valid",
	KindStoreNotFound:       "the store does not exist",
	KindPromotionNotFound:   "the promotion does not exist",
	KindNoPayments:          "no payments were found for this account",
}

// Message is the fixed user-facing text for the kind.
func (k Kind) Message() string {
	if msg, ok := messages[k]; ok {
		return msg
	}
	return messages[KindUnavailable]
}

// Classified reports whether the kind carries a business meaning.
func (k Kind) Classified() bool {
	switch k {
	case KindUnavailable, KindServer:
		return false
	}
	_, ok := messages[k]
	return ok
}

// Failure is the only error type the Client returns. Error() is safe to show
// to users; the status and cause are kept for logs.
type Failure struct {
	Kind   Kind
	Status int
	Err    error
}

func (f *Failure) Error() string { return f.Kind.Message() }

func (f *Failure) Unwrap() error { return f.Err }

// Classified reports whether the backend returned a recognised business failure.
func (f *Failure) Classified() bool { return f.Kind.Classified() }

// Is matches failures by kind, so errors.Is(err, ErrPhoneNotFound) works on any
// failure of that kind regardless of status or cause.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Kind == f.Kind
}

var (
	ErrUnavailable         = &Failure{Kind: KindUnavailable}
	ErrServer              = &Failure{Kind: KindServer}
	ErrAccountExists       = &Failure{Kind: KindAccountExists}
	ErrPhoneNotFound       = &Failure{Kind: KindPhoneNotFound}
	ErrRecipientNotFound   = &Failure{Kind: KindRecipientNotFound}
	ErrInsufficientBalance = &Failure{Kind: KindInsufficientBalance}
	ErrPromotionExpired    = &Failure{Kind: KindPromotionExpired}
	ErrStoreNotFound       = &Failure{Kind: KindStoreNotFound}
	ErrPromotionNotFound   = &Failure{Kind: KindPromotionNotFound}
	ErrNoPayments          = &Failure{Kind: KindNoPayments}
)

// KindOf extracts the failure kind from err. Anything that is not a Failure is unavailable.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnavailable
}
