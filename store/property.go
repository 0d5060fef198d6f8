package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/propertypal/pms-backend/models"
	"github.com/propertypal/pms-backend/storage"
)

// PropertyStatusChange mirrors StatusChange for the property collection.
type PropertyStatusChange struct {
	Changed bool
	Old     models.PropertyStatus
	New     models.PropertyStatus
	Title   string
}

type PropertyStore struct {
	mu         sync.Mutex
	db         storage.Store
	properties []models.Property
}

// NewPropertyStore loads the property collection from durable storage,
// seeding the sample listings when the key is absent or fails validation.
func NewPropertyStore(ctx context.Context, db storage.Store) *PropertyStore {
	s := &PropertyStore{db: db}

	raw, err := db.Get(ctx, storage.KeyProperties)
	switch {
	case err == nil:
		if verr := validateStored("properties", raw); verr != nil {
			slog.Warn("discarding stored properties", "error", verr)
		} else if uerr := json.Unmarshal(raw, &s.properties); uerr != nil {
			slog.Warn("discarding stored properties", "error", uerr)
		} else {
			return s
		}
	case errors.Is(err, storage.ErrNotFound):
		// first run
	default:
		slog.Warn("reading stored properties", "error", err)
	}

	s.properties = models.SampleProperties()
	if perr := s.persist(ctx); perr != nil {
		slog.Warn("persisting property seed", "error", perr)
	}
	return s
}

func (s *PropertyStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.properties)
	if err != nil {
		return fmt.Errorf("encode properties: %w", err)
	}
	if err := s.db.Put(ctx, storage.KeyProperties, raw); err != nil {
		return fmt.Errorf("persist properties: %w", err)
	}
	return nil
}

func (s *PropertyStore) Create(ctx context.Context, fields models.PropertyFields) (models.Property, error) {
	if err := fields.Validate(); err != nil {
		return models.Property{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	property := models.Property{
		ID:            uuid.NewString(),
		Title:         fields.Title,
		Description:   fields.Description,
		PropertyType:  fields.PropertyType,
		ListingType:   fields.ListingType,
		Price:         fields.Price,
		PriceUnit:     fields.PriceUnit,
		Address:       fields.Address,
		City:          fields.City,
		State:         fields.State,
		ZipCode:       fields.ZipCode,
		Bedrooms:      fields.Bedrooms,
		Bathrooms:     fields.Bathrooms,
		SquareFootage: fields.SquareFootage,
		YearBuilt:     fields.YearBuilt,
		Amenities:     fields.Amenities,
		Photos:        fields.Photos,
		Status:        fields.Status,
		Availability:  fields.Availability,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}
	if property.Photos == nil {
		property.Photos = []string{}
	}
	if property.Availability == nil {
		property.Availability = []models.AvailabilityEntry{}
	}
	s.properties = append(s.properties, property)
	return property, s.persist(ctx)
}

func (s *PropertyStore) Update(ctx context.Context, id string, upd models.PropertyUpdate) (PropertyStatusChange, error) {
	if err := upd.Validate(); err != nil {
		return PropertyStatusChange{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID != id {
			continue
		}
		var change PropertyStatusChange
		if upd.Status != nil && *upd.Status != s.properties[i].Status {
			change = PropertyStatusChange{
				Changed: true,
				Old:     s.properties[i].Status,
				New:     *upd.Status,
				Title:   s.properties[i].Title,
			}
		}
		upd.Apply(&s.properties[i])
		s.properties[i].UpdatedAt = time.Now().UTC()
		return change, s.persist(ctx)
	}
	return PropertyStatusChange{}, nil
}

func (s *PropertyStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.properties[:0]
	removed := false
	for _, property := range s.properties {
		if property.ID == id {
			removed = true
			continue
		}
		kept = append(kept, property)
	}
	s.properties = kept
	if !removed {
		return nil
	}
	return s.persist(ctx)
}

// ToggleAvailability flips the availability flag for one calendar date
// (ISO "2006-01-02"). The first toggle of an unseen date marks it
// unavailable; each date appears at most once. An unknown property id
// changes nothing.
func (s *PropertyStore) ToggleAvailability(ctx context.Context, id, date string) (models.AvailabilityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		property := &s.properties[i]
		if property.ID != id {
			continue
		}
		for j := range property.Availability {
			if property.Availability[j].Date == date {
				property.Availability[j].Available = !property.Availability[j].Available
				property.UpdatedAt = time.Now().UTC()
				return property.Availability[j], s.persist(ctx)
			}
		}
		entry := models.AvailabilityEntry{Date: date, Available: false}
		property.Availability = append(property.Availability, entry)
		property.UpdatedAt = time.Now().UTC()
		return entry, s.persist(ctx)
	}
	return models.AvailabilityEntry{}, nil
}

func (s *PropertyStore) GetByID(id string) (models.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, property := range s.properties {
		if property.ID == id {
			return property, true
		}
	}
	return models.Property{}, false
}

func (s *PropertyStore) List() []models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return out
}

func (s *PropertyStore) Stats() models.PropertyStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats models.PropertyStats
	for _, property := range s.properties {
		switch property.Status {
		case models.PropertyAvailable:
			stats.Available++
		case models.PropertyUnderContract:
			stats.UnderContract++
		case models.PropertySold:
			stats.Sold++
		case models.PropertyRented:
			stats.Rented++
		}
	}
	return stats
}
