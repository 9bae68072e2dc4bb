package models

import "time"

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Role    string `json:"role,omitempty"`

	Addresses []Address `json:"addresses,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Landmark string `json:"landmark"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pin_code"`
	Country  string `json:"country"`
}

// UserUpdate carries a partial profile edit. Nil fields are left untouched.
type UserUpdate struct {
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Mobile    *string    `json:"mobile,omitempty"`
	State     *string    `json:"state,omitempty"`
	Country   *string    `json:"country,omitempty"`
	Addresses *[]Address `json:"addresses,omitempty"`
}

// Apply merges the non-nil fields of the update into u.
func (p UserUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Mobile != nil {
		u.Mobile = *p.Mobile
	}
	if p.State != nil {
		u.State = *p.State
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.Addresses != nil {
		u.Addresses = *p.Addresses
	}
}
