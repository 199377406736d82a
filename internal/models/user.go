// Package models defines the account data model shared by the store and the
// account service.
package models

import (
	"fmt"
	"strings"
)

// User is the persisted account record.
//
// ID is assigned by the store on first save; zero means "not yet persisted".
// HashedPassword holds the encoded adaptive hash, never the raw password.
type User struct {
	ID             int64
	UserName       string
	HashedPassword string

	FirstName string
	LastName  string

	Address1 string
	Address2 string
	City     string
	State    string
	Country  string
}

// Profile is the set of fields a user may edit after creation.
type Profile struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	State     string
	Country   string
}

// IsPersisted reports whether the store has assigned an id.
func (u *User) IsPersisted() bool {
	return u != nil && u.ID != 0
}

// Profile returns the editable fields of u.
func (u *User) Profile() Profile {
	return Profile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address1:  u.Address1,
		Address2:  u.Address2,
		City:      u.City,
		State:     u.State,
		Country:   u.Country,
	}
}

// ApplyProfile overwrites the editable fields of u. Identity and credentials
// are left untouched.
func (u *User) ApplyProfile(p Profile) {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	u.Address1 = p.Address1
	u.Address2 = p.Address2
	u.City = p.City
	u.State = p.State
	u.Country = p.Country
}

// DisplayName renders the list caption, e.g. "[3] alice01".
func (u *User) DisplayName() string {
	return fmt.Sprintf("[%d] %s", u.ID, u.UserName)
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
