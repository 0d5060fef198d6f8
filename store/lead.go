// Package store holds the authoritative in-memory collections and keeps the
// durable key-value mirror in sync. Every mutation rewrites the owning
// collection's key in full; reads never touch the durable layer after
// construction.
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

// StatusChange describes what an update did to a lead's status. The store
// returns it instead of firing a callback; whether anything gets published is
// the caller's decision.
type StatusChange struct {
	Changed bool
	Old     models.LeadStatus
	New     models.LeadStatus
	Name    string
}

type LeadStore struct {
	mu    sync.Mutex
	db    storage.Store
	leads []models.Lead
}

// NewLeadStore loads the lead collection from durable storage. An absent key
// or one holding data that fails schema validation falls back to the built-in
// sample set, which is persisted immediately.
func NewLeadStore(ctx context.Context, db storage.Store) *LeadStore {
	s := &LeadStore{db: db}

	raw, err := db.Get(ctx, storage.KeyLeads)
	switch {
	case err == nil:
		if verr := validateStored("leads", raw); verr != nil {
			slog.Warn("discarding stored leads", "error", verr)
		} else if uerr := json.Unmarshal(raw, &s.leads); uerr != nil {
			slog.Warn("discarding stored leads", "error", uerr)
		} else {
			return s
		}
	case errors.Is(err, storage.ErrNotFound):
		// first run
	default:
		slog.Warn("reading stored leads", "error", err)
	}

	s.leads = models.SampleLeads()
	if perr := s.persist(ctx); perr != nil {
		slog.Warn("persisting lead seed", "error", perr)
	}
	return s
}

func (s *LeadStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.leads)
	if err != nil {
		return fmt.Errorf("encode leads: %w", err)
	}
	if err := s.db.Put(ctx, storage.KeyLeads, raw); err != nil {
		return fmt.Errorf("persist leads: %w", err)
	}
	return nil
}

// Create appends a new lead with a fresh id and now() timestamps.
func (s *LeadStore) Create(ctx context.Context, fields models.LeadFields) (models.Lead, error) {
	if err := fields.Validate(); err != nil {
		return models.Lead{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	lead := models.Lead{
		ID:                uuid.NewString(),
		FirstName:         fields.FirstName,
		LastName:          fields.LastName,
		Email:             fields.Email,
		Phone:             fields.Phone,
		DateOfBirth:       fields.DateOfBirth,
		PropertyType:      fields.PropertyType,
		Requirement:       fields.Requirement,
		Budget:            fields.Budget,
		PreferredLocation: fields.PreferredLocation,
		Bedrooms:          fields.Bedrooms,
		Bathrooms:         fields.Bathrooms,
		SquareFootage:     fields.SquareFootage,
		Status:            fields.Status,
		Source:            fields.Source,
		Notes:             fields.Notes,
		Address:           fields.Address,
		City:              fields.City,
		State:             fields.State,
		ZipCode:           fields.ZipCode,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.leads = append(s.leads, lead)
	return lead, s.persist(ctx)
}

// Update merges the set fields into the lead with the given id and reports
// whether the status changed. An unknown id changes nothing and is not an
// error.
func (s *LeadStore) Update(ctx context.Context, id string, upd models.LeadUpdate) (StatusChange, error) {
	if err := upd.Validate(); err != nil {
		return StatusChange{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID != id {
			continue
		}
		var change StatusChange
		if upd.Status != nil && *upd.Status != s.leads[i].Status {
			change = StatusChange{
				Changed: true,
				Old:     s.leads[i].Status,
				New:     *upd.Status,
				Name:    s.leads[i].DisplayName(),
			}
		}
		upd.Apply(&s.leads[i])
		s.leads[i].UpdatedAt = time.Now().UTC()
		return change, s.persist(ctx)
	}
	return StatusChange{}, nil
}

// Remove deletes the lead with the given id. Unknown ids are ignored.
func (s *LeadStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.leads[:0]
	removed := false
	for _, lead := range s.leads {
		if lead.ID == id {
			removed = true
			continue
		}
		kept = append(kept, lead)
	}
	s.leads = kept
	if !removed {
		return nil
	}
	return s.persist(ctx)
}

func (s *LeadStore) GetByID(id string) (models.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		if lead.ID == id {
			return lead, true
		}
	}
	return models.Lead{}, false
}

// List returns a snapshot of the collection in insertion order.
func (s *LeadStore) List() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// Stats recounts the status buckets on every call.
func (s *LeadStore) Stats() models.LeadStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats models.LeadStats
	for _, lead := range s.leads {
		switch lead.Status {
		case models.LeadNotStarted:
			stats.NotStarted++
		case models.LeadInProgress:
			stats.InProgress++
		case models.LeadComplete:
			stats.Complete++
		}
	}
	return stats
}
