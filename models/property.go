package models

import (
	"fmt"
	"strings"
	"time"
)

type PropertyType string

const (
	TypeResidential PropertyType = "residential"
	TypeCommercial  PropertyType = "commercial"
	TypeIndustrial  PropertyType = "industrial"
	TypeLand        PropertyType = "land"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeResidential, TypeCommercial, TypeIndustrial, TypeLand:
		return true
	}
	return false
}

type Requirement string

const (
	RequirementBuy   Requirement = "buy"
	RequirementSell  Requirement = "sell"
	RequirementRent  Requirement = "rent"
	RequirementLease Requirement = "lease"
)

func (r Requirement) Valid() bool {
	switch r {
	case RequirementBuy, RequirementSell, RequirementRent, RequirementLease:
		return true
	}
	return false
}

type ListingType string

const (
	ListingSale  ListingType = "sale"
	ListingRent  ListingType = "rent"
	ListingLease ListingType = "lease"
)

func (t ListingType) Valid() bool {
	switch t {
	case ListingSale, ListingRent, ListingLease:
		return true
	}
	return false
}

type PriceUnit string

const (
	PriceTotal   PriceUnit = "total"
	PriceMonthly PriceUnit = "monthly"
	PriceYearly  PriceUnit = "yearly"
)

func (u PriceUnit) Valid() bool {
	switch u {
	case PriceTotal, PriceMonthly, PriceYearly:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyAvailable     PropertyStatus = "available"
	PropertyUnderContract PropertyStatus = "under-contract"
	PropertySold          PropertyStatus = "sold"
	PropertyRented        PropertyStatus = "rented"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyAvailable, PropertyUnderContract, PropertySold, PropertyRented:
		return true
	}
	return false
}

func (s PropertyStatus) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// AvailabilityEntry marks a single calendar date. Dates are ISO "2006-01-02"
// strings; the store keeps at most one entry per date.
type AvailabilityEntry struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Notes     string `json:"notes,omitempty"`
}

type Property struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	PropertyType  PropertyType        `json:"propertyType"`
	ListingType   ListingType         `json:"listingType"`
	Price         float64             `json:"price"`
	PriceUnit     PriceUnit           `json:"priceUnit"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	ZipCode       string              `json:"zipCode"`
	Bedrooms      *int                `json:"bedrooms,omitempty"`
	Bathrooms     *int                `json:"bathrooms,omitempty"`
	SquareFootage float64             `json:"squareFootage"`
	YearBuilt     *int                `json:"yearBuilt,omitempty"`
	Amenities     []string            `json:"amenities"`
	Photos        []string            `json:"photos"`
	Status        PropertyStatus      `json:"status"`
	Availability  []AvailabilityEntry `json:"availability"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type PropertyFields struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	PropertyType  PropertyType        `json:"propertyType"`
	ListingType   ListingType         `json:"listingType"`
	Price         float64             `json:"price"`
	PriceUnit     PriceUnit           `json:"priceUnit"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	ZipCode       string              `json:"zipCode"`
	Bedrooms      *int                `json:"bedrooms,omitempty"`
	Bathrooms     *int                `json:"bathrooms,omitempty"`
	SquareFootage float64             `json:"squareFootage"`
	YearBuilt     *int                `json:"yearBuilt,omitempty"`
	Amenities     []string            `json:"amenities"`
	Photos        []string            `json:"photos"`
	Status        PropertyStatus      `json:"status"`
	Availability  []AvailabilityEntry `json:"availability"`
}

func (f PropertyFields) Validate() error {
	if !f.Status.Valid() {
		return fmt.Errorf("invalid property status %q", f.Status)
	}
	if !f.PropertyType.Valid() {
		return fmt.Errorf("invalid property type %q", f.PropertyType)
	}
	if !f.ListingType.Valid() {
		return fmt.Errorf("invalid listing type %q", f.ListingType)
	}
	if !f.PriceUnit.Valid() {
		return fmt.Errorf("invalid price unit %q", f.PriceUnit)
	}
	return nil
}

// PropertyUpdate lists every mutable Property field; nil keeps the current
// value. Amenities, Photos and Availability replace wholesale, matching the
// full-value semantics of the form that edits them.
type PropertyUpdate struct {
	Title         *string              `json:"title,omitempty"`
	Description   *string              `json:"description,omitempty"`
	PropertyType  *PropertyType        `json:"propertyType,omitempty"`
	ListingType   *ListingType         `json:"listingType,omitempty"`
	Price         *float64             `json:"price,omitempty"`
	PriceUnit     *PriceUnit           `json:"priceUnit,omitempty"`
	Address       *string              `json:"address,omitempty"`
	City          *string              `json:"city,omitempty"`
	State         *string              `json:"state,omitempty"`
	ZipCode       *string              `json:"zipCode,omitempty"`
	Bedrooms      *int                 `json:"bedrooms,omitempty"`
	Bathrooms     *int                 `json:"bathrooms,omitempty"`
	SquareFootage *float64             `json:"squareFootage,omitempty"`
	YearBuilt     *int                 `json:"yearBuilt,omitempty"`
	Amenities     *[]string            `json:"amenities,omitempty"`
	Photos        *[]string            `json:"photos,omitempty"`
	Status        *PropertyStatus      `json:"status,omitempty"`
	Availability  *[]AvailabilityEntry `json:"availability,omitempty"`
}

func (u PropertyUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("invalid property status %q", *u.Status)
	}
	if u.PropertyType != nil && !u.PropertyType.Valid() {
		return fmt.Errorf("invalid property type %q", *u.PropertyType)
	}
	if u.ListingType != nil && !u.ListingType.Valid() {
		return fmt.Errorf("invalid listing type %q", *u.ListingType)
	}
	if u.PriceUnit != nil && !u.PriceUnit.Valid() {
		return fmt.Errorf("invalid price unit %q", *u.PriceUnit)
	}
	return nil
}

func (u PropertyUpdate) Apply(p *Property) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.PropertyType != nil {
		p.PropertyType = *u.PropertyType
	}
	if u.ListingType != nil {
		p.ListingType = *u.ListingType
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.PriceUnit != nil {
		p.PriceUnit = *u.PriceUnit
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.State != nil {
		p.State = *u.State
	}
	if u.ZipCode != nil {
		p.ZipCode = *u.ZipCode
	}
	if u.Bedrooms != nil {
		p.Bedrooms = u.Bedrooms
	}
	if u.Bathrooms != nil {
		p.Bathrooms = u.Bathrooms
	}
	if u.SquareFootage != nil {
		p.SquareFootage = *u.SquareFootage
	}
	if u.YearBuilt != nil {
		p.YearBuilt = u.YearBuilt
	}
	if u.Amenities != nil {
		p.Amenities = *u.Amenities
	}
	if u.Photos != nil {
		p.Photos = *u.Photos
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Availability != nil {
		p.Availability = *u.Availability
	}
}

type PropertyStats struct {
	Available     int `json:"available"`
	UnderContract int `json:"underContract"`
	Sold          int `json:"sold"`
	Rented        int `json:"rented"`
}

func (s PropertyStats) Total() int {
	return s.Available + s.UnderContract + s.Sold + s.Rented
}
