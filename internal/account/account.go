package account

import "time"

// Account represents a single customer account record. ID and CreatedAt are
// set once at creation and never change afterwards.
type Account struct {
	ID          string    `json:"accountId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Country     string    `json:"country,omitempty"`
	CreatedAt   time.Time `json:"dateCreated"`
}

// FullName returns the customer's first and last name joined by a space.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// UpdateFields is a sparse override payload for an update. A nil field means
// "leave the stored value untouched"; a non-nil field replaces it.
type UpdateFields struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// ApplyUpdate returns a new Account built from existing with the supplied
// overrides applied. ID and CreatedAt are always carried over unchanged and
// the existing value is never mutated.
func ApplyUpdate(existing Account, fields UpdateFields) Account {
	merged := existing
	if fields.FirstName != nil {
		merged.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		merged.LastName = *fields.LastName
	}
	if fields.Email != nil {
		merged.Email = *fields.Email
	}
	if fields.PhoneNumber != nil {
		merged.PhoneNumber = *fields.PhoneNumber
	}
	if fields.Address != nil {
		merged.Address = *fields.Address
	}
	if fields.City != nil {
		merged.City = *fields.City
	}
	if fields.State != nil {
		merged.State = *fields.State
	}
	if fields.Country != nil {
		merged.Country = *fields.Country
	}
	return merged
}
