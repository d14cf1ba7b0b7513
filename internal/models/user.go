package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UserID is the opaque identifier the auth service assigns to an account.
// The backend emits it as a JSON number or string; both decode to the same value.
type UserID string

// String returns the identifier as used in request paths.
func (id UserID) String() string { return string(id) }

// IsZero reports whether no user is identified.
func (id UserID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

// UnmarshalJSON accepts both `1` and `"1"`.
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// Identity is the body returned by register and login.
type Identity struct {
	ID UserID `json:"id"`
}

// User is an account as known to the fixture backend.
type User struct {
	ID    UserID `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
