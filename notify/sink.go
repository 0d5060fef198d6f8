// Package notify is an append-only, in-process log of human-readable events.
// The HTTP layer reads it to drive the notification bell; nothing here is
// persisted, deduplicated, or capped.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/propertypal/pms-backend/models"
)

// Input is one event to record. An unrecognized severity is stored as info.
type Input struct {
	Title    string
	Message  string
	Severity models.Severity
	LeadID   string
}

type Sink struct {
	mu     sync.Mutex
	events []models.Notification
}

func NewSink() *Sink {
	return &Sink{}
}

// Append records the event at the end of the log and returns the stored form.
func (s *Sink) Append(in Input) models.Notification {
	severity := in.Severity
	if !severity.Valid() {
		severity = models.SeverityInfo
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.Notification{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Message:   in.Message,
		Severity:  severity,
		Read:      false,
		CreatedAt: time.Now().UTC(),
		LeadID:    in.LeadID,
	}
	s.events = append(s.events, event)
	return event
}

// List returns a snapshot of the log in append order.
func (s *Sink) List() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.events))
	copy(out, s.events)
	return out
}

// Unread counts events not yet marked read.
func (s *Sink) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, event := range s.events {
		if !event.Read {
			n++
		}
	}
	return n
}

// MarkRead flags one event as read; false if the id is unknown.
func (s *Sink) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Read = true
			return true
		}
	}
	return false
}

func (s *Sink) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		s.events[i].Read = true
	}
}
