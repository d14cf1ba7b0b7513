// Package form holds field validation and the submit lifecycle shared by the
// login, register and transfer forms. Nothing here knows how a form is drawn.
package form

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Result is the outcome of one rule against one value.
type Result struct {
	Valid   bool
	Message string
}

var pass = Result{Valid: true}

func fail(msg string) Result { return Result{Message: msg} }

// Rule is a pure predicate over a field value. Apart from Required, rules
// accept the empty string so that optional fields can share them.
type Rule func(value string) Result

func Required(msg string) Rule {
	return func(v string) Result {
		if strings.TrimSpace(v) == "" {
			return fail(msg)
		}
		return pass
	}
}

func Matches(pattern *regexp.Regexp, msg string) Rule {
	return func(v string) Result {
		if v == "" || pattern.MatchString(v) {
			return pass
		}
		return fail(msg)
	}
}

// Length requires exactly n characters.
func Length(n int, msg string) Rule {
	return func(v string) Result {
		if v == "" || utf8.RuneCountInString(v) == n {
			return pass
		}
		return fail(msg)
	}
}

func Digits(msg string) Rule {
	return func(v string) Result {
		for _, r := range v {
			if r < '0' || r > '9' {
				return fail(msg)
			}
		}
		return pass
	}
}

// Letters allows ASCII letters and spaces.
func Letters(msg string) Rule {
	return func(v string) Result {
		for _, r := range v {
			if r != ' ' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				return fail(msg)
			}
		}
		return pass
	}
}

func Number(msg string) Rule {
	return func(v string) Result {
		if v == "" {
			return pass
		}
		if _, err := decimal.NewFromString(strings.TrimSpace(v)); err != nil {
			return fail(msg)
		}
		return pass
	}
}

// Positive fails for numbers <= 0. Non-numeric input is left to Number.
func Positive(msg string) Rule {
	return func(v string) Result {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.IsPositive() {
			return pass
		}
		return fail(msg)
	}
}

// AtMost fails for numbers above limit. Non-numeric input is left to Number.
func AtMost(limit decimal.Decimal, msg string) Rule {
	return func(v string) Result {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.LessThanOrEqual(limit) {
			return pass
		}
		return fail(msg)
	}
}

// Schema maps each field to its rules, checked in order.
type Schema map[string][]Rule

// Errors maps a field to the message of its first failing rule.
type Errors map[string]string

func (s Schema) Field(name, value string) (string, bool) {
	for _, rule := range s[name] {
		if res := rule(value); !res.Valid {
			return res.Message, false
		}
	}
	return "", true
}

// Validate checks every field in the schema. Missing values count as empty.
func (s Schema) Validate(values map[string]string) Errors {
	errs := Errors{}
	for name := range s {
		if msg, valid := s.Field(name, values[name]); !valid {
			errs[name] = msg
		}
	}
	return errs
}
