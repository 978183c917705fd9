package model

import "fmt"

// UserRecord is one entry in the working set of users.
type UserRecord struct {
	// ID identifies the record; compared in normalized form
	ID ID `json:"id" yaml:"id"`

	// User holds the editable profile and the portfolio
	User Profile `json:"user" yaml:"user"`
}

// Label is the text shown for the record in the user list.
func (u *UserRecord) Label() string {
	return fmt.Sprintf("%s, %s", u.User.LastName, u.User.FirstName)
}
