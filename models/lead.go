package models

import (
	"fmt"
	"strings"
	"time"
)

type LeadStatus string

const (
	LeadNotStarted LeadStatus = "not-started"
	LeadInProgress LeadStatus = "in-progress"
	LeadComplete   LeadStatus = "complete"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNotStarted, LeadInProgress, LeadComplete:
		return true
	}
	return false
}

// Label is the human-readable form used in notifications and reports.
func (s LeadStatus) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

type LeadSource string

const (
	SourceWebsite       LeadSource = "website"
	SourceReferral      LeadSource = "referral"
	SourceSocialMedia   LeadSource = "social-media"
	SourceAdvertisement LeadSource = "advertisement"
	SourceOther         LeadSource = "other"
)

func (s LeadSource) Valid() bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceSocialMedia, SourceAdvertisement, SourceOther:
		return true
	}
	return false
}

func (s LeadSource) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

type Lead struct {
	ID                string       `json:"id"`
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	DateOfBirth       string       `json:"dateOfBirth"`
	PropertyType      PropertyType `json:"propertyType"`
	Requirement       Requirement  `json:"requirement"`
	Budget            string       `json:"budget"`
	PreferredLocation string       `json:"preferredLocation"`
	Bedrooms          *int         `json:"bedrooms,omitempty"`
	Bathrooms         *int         `json:"bathrooms,omitempty"`
	SquareFootage     string       `json:"squareFootage,omitempty"`
	Status            LeadStatus   `json:"status"`
	Source            LeadSource   `json:"source"`
	Notes             string       `json:"notes"`
	Address           string       `json:"address"`
	City              string       `json:"city"`
	State             string       `json:"state"`
	ZipCode           string       `json:"zipCode"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

func (l Lead) DisplayName() string {
	return l.FirstName + " " + l.LastName
}

// LeadFields carries everything a caller supplies on create; the store owns
// identity and timestamps.
type LeadFields struct {
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	DateOfBirth       string       `json:"dateOfBirth"`
	PropertyType      PropertyType `json:"propertyType"`
	Requirement       Requirement  `json:"requirement"`
	Budget            string       `json:"budget"`
	PreferredLocation string       `json:"preferredLocation"`
	Bedrooms          *int         `json:"bedrooms,omitempty"`
	Bathrooms         *int         `json:"bathrooms,omitempty"`
	SquareFootage     string       `json:"squareFootage,omitempty"`
	Status            LeadStatus   `json:"status"`
	Source            LeadSource   `json:"source"`
	Notes             string       `json:"notes"`
	Address           string       `json:"address"`
	City              string       `json:"city"`
	State             string       `json:"state"`
	ZipCode           string       `json:"zipCode"`
}

func (f LeadFields) Validate() error {
	if !f.Status.Valid() {
		return fmt.Errorf("invalid lead status %q", f.Status)
	}
	if !f.Source.Valid() {
		return fmt.Errorf("invalid lead source %q", f.Source)
	}
	if !f.PropertyType.Valid() {
		return fmt.Errorf("invalid property type %q", f.PropertyType)
	}
	if !f.Requirement.Valid() {
		return fmt.Errorf("invalid requirement %q", f.Requirement)
	}
	return nil
}

// LeadUpdate lists every mutable Lead field. Nil means "keep the current
// value"; there is no way to address a field that is not listed here.
type LeadUpdate struct {
	FirstName         *string       `json:"firstName,omitempty"`
	LastName          *string       `json:"lastName,omitempty"`
	Email             *string       `json:"email,omitempty"`
	Phone             *string       `json:"phone,omitempty"`
	DateOfBirth       *string       `json:"dateOfBirth,omitempty"`
	PropertyType      *PropertyType `json:"propertyType,omitempty"`
	Requirement       *Requirement  `json:"requirement,omitempty"`
	Budget            *string       `json:"budget,omitempty"`
	PreferredLocation *string       `json:"preferredLocation,omitempty"`
	Bedrooms          *int          `json:"bedrooms,omitempty"`
	Bathrooms         *int          `json:"bathrooms,omitempty"`
	SquareFootage     *string       `json:"squareFootage,omitempty"`
	Status            *LeadStatus   `json:"status,omitempty"`
	Source            *LeadSource   `json:"source,omitempty"`
	Notes             *string       `json:"notes,omitempty"`
	Address           *string       `json:"address,omitempty"`
	City              *string       `json:"city,omitempty"`
	State             *string       `json:"state,omitempty"`
	ZipCode           *string       `json:"zipCode,omitempty"`
}

func (u LeadUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("invalid lead status %q", *u.Status)
	}
	if u.Source != nil && !u.Source.Valid() {
		return fmt.Errorf("invalid lead source %q", *u.Source)
	}
	if u.PropertyType != nil && !u.PropertyType.Valid() {
		return fmt.Errorf("invalid property type %q", *u.PropertyType)
	}
	if u.Requirement != nil && !u.Requirement.Valid() {
		return fmt.Errorf("invalid requirement %q", *u.Requirement)
	}
	return nil
}

// Apply merges the set fields into l. Timestamps are the store's concern.
func (u LeadUpdate) Apply(l *Lead) {
	if u.FirstName != nil {
		l.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		l.LastName = *u.LastName
	}
	if u.Email != nil {
		l.Email = *u.Email
	}
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.DateOfBirth != nil {
		l.DateOfBirth = *u.DateOfBirth
	}
	if u.PropertyType != nil {
		l.PropertyType = *u.PropertyType
	}
	if u.Requirement != nil {
		l.Requirement = *u.Requirement
	}
	if u.Budget != nil {
		l.Budget = *u.Budget
	}
	if u.PreferredLocation != nil {
		l.PreferredLocation = *u.PreferredLocation
	}
	if u.Bedrooms != nil {
		l.Bedrooms = u.Bedrooms
	}
	if u.Bathrooms != nil {
		l.Bathrooms = u.Bathrooms
	}
	if u.SquareFootage != nil {
		l.SquareFootage = *u.SquareFootage
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.Source != nil {
		l.Source = *u.Source
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
	if u.Address != nil {
		l.Address = *u.Address
	}
	if u.City != nil {
		l.City = *u.City
	}
	if u.State != nil {
		l.State = *u.State
	}
	if u.ZipCode != nil {
		l.ZipCode = *u.ZipCode
	}
}

// LeadStats is the status breakdown rendered on the dashboard and reports.
type LeadStats struct {
	NotStarted int `json:"notStarted"`
	InProgress int `json:"inProgress"`
	Complete   int `json:"complete"`
}

func (s LeadStats) Total() int {
	return s.NotStarted + s.InProgress + s.Complete
}
