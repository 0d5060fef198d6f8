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

var (
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is the single login failure mode; it does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrNoSession = errors.New("no active session")
)

// AuthStore owns the account collection and the single session pointer.
// Passwords are stored inline in the durable account collection exactly as
// entered; the session copy always has the password stripped.
type AuthStore struct {
	mu      sync.Mutex
	db      storage.Store
	users   []models.User
	session *models.User
	payment *models.PaymentDetails
}

// NewAuthStore loads the account collection and restores the session pointer
// from durable storage. Corrupt account data is discarded; there is no seed
// for accounts, the collection just starts empty.
func NewAuthStore(ctx context.Context, db storage.Store) *AuthStore {
	s := &AuthStore{db: db}

	if raw, err := db.Get(ctx, storage.KeyUsers); err == nil {
		if verr := validateStored("users", raw); verr != nil {
			slog.Warn("discarding stored accounts", "error", verr)
		} else if uerr := json.Unmarshal(raw, &s.users); uerr != nil {
			slog.Warn("discarding stored accounts", "error", uerr)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		slog.Warn("reading stored accounts", "error", err)
	}

	if raw, err := db.Get(ctx, storage.KeySession); err == nil {
		if verr := validateStored("session", raw); verr != nil {
			slog.Warn("discarding stored session", "error", verr)
		} else {
			var session models.User
			if uerr := json.Unmarshal(raw, &session); uerr == nil {
				session.Password = ""
				s.session = &session
			}
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		slog.Warn("reading stored session", "error", err)
	}

	if raw, err := db.Get(ctx, storage.KeyPayment); err == nil {
		var payment models.PaymentDetails
		if uerr := json.Unmarshal(raw, &payment); uerr == nil {
			s.payment = &payment
		}
	}

	return s
}

func (s *AuthStore) persistUsers(ctx context.Context) error {
	raw, err := json.Marshal(s.users)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := s.db.Put(ctx, storage.KeyUsers, raw); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

func (s *AuthStore) persistSession(ctx context.Context) error {
	if s.session == nil {
		if err := s.db.Delete(ctx, storage.KeySession); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	}
	raw, err := json.Marshal(s.session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.db.Put(ctx, storage.KeySession, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Register creates an account and signs it in. The email must not collide
// with an existing account (case-sensitive exact match).
func (s *AuthStore) Register(ctx context.Context, fields models.UserFields, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == fields.Email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        fields.Email,
		FirstName:    fields.FirstName,
		LastName:     fields.LastName,
		Phone:        fields.Phone,
		Address:      fields.Address,
		City:         fields.City,
		State:        fields.State,
		ZipCode:      fields.ZipCode,
		ProfileImage: fields.ProfileImage,
		Password:     password,
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, user)
	if err := s.persistUsers(ctx); err != nil {
		return models.User{}, err
	}

	session := user.Sanitized()
	s.session = &session
	if err := s.persistSession(ctx); err != nil {
		return models.User{}, err
	}
	return session, nil
}

// Login scans for an exact (email, password) pair and points the session at
// the matching account.
func (s *AuthStore) Login(ctx context.Context, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email && user.Password == password {
			session := user.Sanitized()
			s.session = &session
			if err := s.persistSession(ctx); err != nil {
				return models.User{}, err
			}
			return session, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the session pointer. Safe to call when nobody is signed in.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.persistSession(ctx)
}

// Current returns the signed-in account, password stripped.
func (s *AuthStore) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.User{}, false
	}
	return *s.session, true
}

// UpdateSession merges profile fields into the session copy and into the
// matching account record, persisting both.
func (s *AuthStore) UpdateSession(ctx context.Context, upd models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.User{}, ErrNoSession
	}

	upd.Apply(s.session)
	if err := s.persistSession(ctx); err != nil {
		return models.User{}, err
	}

	for i := range s.users {
		if s.users[i].ID == s.session.ID {
			upd.Apply(&s.users[i])
			if err := s.persistUsers(ctx); err != nil {
				return models.User{}, err
			}
			break
		}
	}
	return *s.session, nil
}

// SavePayment stores the payment details blob under its own key.
func (s *AuthStore) SavePayment(ctx context.Context, details models.PaymentDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payment = &details
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode payment details: %w", err)
	}
	if err := s.db.Put(ctx, storage.KeyPayment, raw); err != nil {
		return fmt.Errorf("persist payment details: %w", err)
	}
	return nil
}

func (s *AuthStore) Payment() (models.PaymentDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.payment == nil {
		return models.PaymentDetails{}, false
	}
	return *s.payment, true
}
