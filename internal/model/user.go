package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decoding errors
var (
	ErrEmptyPayload    = errors.New("empty payload")
	ErrNotAnArray      = errors.New("payload is not a JSON array")
	ErrMissingUserName = errors.New("user record has no name")
)

// User is a single record of the remote users endpoint
type User struct {
	Name string `json:"name"`
}

// userRecord mirrors User with a required name
type userRecord struct {
	Name *string `json:"name"`
}

// UserRow is the display-ready form of a User
type UserRow struct {
	Name string
}

// DisplayText returns the text shown for the row
func (r UserRow) DisplayText() string {
	return r.Name
}

// DecodeUsers decodes a JSON array of user objects. Every element must carry a
// string "name"; other fields are ignored.
func DecodeUsers(data []byte) ([]User, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	// "null" unmarshals into a nil slice without error
	if records == nil {
		return nil, ErrNotAnArray
	}

	users := make([]User, 0, len(records))
	for i, rec := range records {
		if rec.Name == nil {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingUserName)
		}
		users = append(users, User{Name: *rec.Name})
	}
	return users, nil
}

// NewUserRows maps decoded users to display rows, preserving order
func NewUserRows(users []User) []UserRow {
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, UserRow{Name: u.Name})
	}
	return rows
}
