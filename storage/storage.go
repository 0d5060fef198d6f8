// Package storage is the durable key-value mirror behind the entity stores.
// Each collection lives whole under one fixed key as a single JSON value and
// is rewritten on every mutation. There is no versioning and no merge: two
// processes writing the same key race, and the last writer wins.
package storage

import (
	"context"
	"errors"
)

// One key per persisted collection.
const (
	KeyLeads      = "pms_leads"
	KeyProperties = "pms_properties"
	KeyUsers      = "pms_users"
	KeySession    = "pms_user"
	KeyPayment    = "pms_payment"
)

var ErrNotFound = errors.New("storage: key not found")

// Store reads and writes opaque JSON blobs under string keys. Get returns
// ErrNotFound for an absent key; Delete of an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
