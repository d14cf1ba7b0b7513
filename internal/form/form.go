package form

import (
	"context"
	"errors"
	"maps"
	"sync"
)

var (
	ErrInvalid = errors.New("form: invalid values")
	ErrBusy    = errors.New("form: submission already in progress")
)

// GenericMessage is shown when a mutation fails with an error that carries no
// user-facing text.
const GenericMessage = "something went wrong, please try again"

type State int

const (
	Editing State = iota
	Validating
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "editing"
	}
}

// Values are the raw text values of a form, keyed by field.
type Values map[string]string

// Mutation sends validated values to the backend.
type Mutation func(ctx context.Context, values Values) error

// Rejection is a mutation failure whose text is meant for the user as is.
type Rejection struct{ Message string }

func (r *Rejection) Error() string    { return r.Message }
func (r *Rejection) Classified() bool { return true }

func Reject(msg string) error { return &Rejection{Message: msg} }

type userFacing interface {
	error
	Classified() bool
}

// View is what a renderer needs: errors only for fields the user has left or
// tried to submit.
type View struct {
	State   State
	Values  Values
	Errors  Errors
	Message string
}

type Form struct {
	mu      sync.Mutex
	schema  Schema
	values  Values
	touched map[string]bool
	errs    Errors
	state   State
	message string
}

func New(schema Schema) *Form {
	return &Form{
		schema:  schema,
		values:  Values{},
		touched: map[string]bool{},
		errs:    Errors{},
	}
}

// Change sets a field and revalidates it. A previous failure message is kept
// but the form goes back to editing.
func (f *Form) Change(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
	f.revalidate(field)
	if f.state != Submitting {
		f.state = Editing
	}
}

// Blur marks a field as visited so its error becomes visible.
func (f *Form) Blur(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched[field] = true
	f.revalidate(field)
}

func (f *Form) revalidate(field string) {
	if msg, valid := f.schema.Field(field, f.values[field]); valid {
		delete(f.errs, field)
	} else {
		f.errs[field] = msg
	}
}

// Submit validates every field and, if all pass, runs mutate exactly once.
// It refuses with ErrInvalid while any field is invalid and with ErrBusy while
// another submission is in flight. On success the values are cleared; on
// failure they are kept and the failure message is recorded.
func (f *Form) Submit(ctx context.Context, mutate Mutation) error {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	f.state = Validating
	for name := range f.schema {
		f.touched[name] = true
	}
	f.errs = f.schema.Validate(f.values)
	if len(f.errs) > 0 {
		f.state = Editing
		f.mu.Unlock()
		return ErrInvalid
	}
	f.state = Submitting
	f.message = ""
	values := maps.Clone(f.values)
	f.mu.Unlock()

	err := mutate(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Failed
		f.message = failureMessage(err)
		return err
	}
	f.state = Succeeded
	f.values = Values{}
	f.touched = map[string]bool{}
	f.errs = Errors{}
	return nil
}

// Reset clears everything, as when a dialog is closed.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitting {
		return
	}
	f.values = Values{}
	f.touched = map[string]bool{}
	f.errs = Errors{}
	f.state = Editing
	f.message = ""
}

func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	visible := Errors{}
	for name, msg := range f.errs {
		if f.touched[name] {
			visible[name] = msg
		}
	}
	return View{
		State:   f.state,
		Values:  maps.Clone(f.values),
		Errors:  visible,
		Message: f.message,
	}
}

func failureMessage(err error) string {
	var uf userFacing
	if errors.As(err, &uf) {
		return uf.Error()
	}
	return GenericMessage
}
