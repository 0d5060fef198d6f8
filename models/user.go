package models

import "time"

// User is an account record. Password travels inline in the durable account
// collection (the system has no hashing step) and is stripped from the
// session copy before it leaves the auth store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Password     string    `json:"password,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Sanitized returns a copy safe to hand outside the auth store.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

type UserFields struct {
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// UserUpdate lists the profile fields editable after registration. Email is
// deliberately absent: it is the account's natural key.
type UserUpdate struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zipCode,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

func (u UserUpdate) Apply(user *User) {
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.Address != nil {
		user.Address = *u.Address
	}
	if u.City != nil {
		user.City = *u.City
	}
	if u.State != nil {
		user.State = *u.State
	}
	if u.ZipCode != nil {
		user.ZipCode = *u.ZipCode
	}
	if u.ProfileImage != nil {
		user.ProfileImage = *u.ProfileImage
	}
}

// PaymentDetails is persisted whole under its own key. Stored as entered,
// CVV included; the durable layer offers no secrecy here.
type PaymentDetails struct {
	CardNumber     string `json:"cardNumber"`
	CardHolder     string `json:"cardHolder"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billingAddress"`
}
