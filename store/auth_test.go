package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertypal/pms-backend/models"
	"github.com/propertypal/pms-backend/storage"
)

func userFields(email string) models.UserFields {
	return models.UserFields{
		Email:     email,
		FirstName: "Pat",
		LastName:  "Doe",
		Phone:     "555-0100",
	}
}

func TestRegisterSignsIn(t *testing.T) {
	db := storage.NewMemory()
	s := NewAuthStore(context.Background(), db)

	user, err := s.Register(context.Background(), userFields("pat@example.com"), "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password, "session copy must not carry the password")

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "pat@example.com", current.Email)
	assert.Empty(t, current.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := storage.NewMemory()
	s := NewAuthStore(context.Background(), db)
	ctx := context.Background()

	_, err := s.Register(ctx, userFields("pat@example.com"), "original")
	require.NoError(t, err)

	_, err = s.Register(ctx, userFields("pat@example.com"), "other")
	require.ErrorIs(t, err, ErrEmailTaken)

	// The original credentials still win.
	require.NoError(t, s.Logout(ctx))
	_, err = s.Login(ctx, "pat@example.com", "other")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "pat@example.com", "original")
	require.NoError(t, err)
}

func TestLoginSingleFailureMode(t *testing.T) {
	db := storage.NewMemory()
	s := NewAuthStore(context.Background(), db)
	ctx := context.Background()

	_, err := s.Register(ctx, userFields("pat@example.com"), "hunter2")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	// Unknown email and wrong password are indistinguishable.
	_, unknownErr := s.Login(ctx, "nobody@example.com", "hunter2")
	_, wrongErr := s.Login(ctx, "pat@example.com", "wrong")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	_, ok := s.Current()
	assert.False(t, ok, "failed login must not create a session")
}

func TestLogoutClearsSession(t *testing.T) {
	db := storage.NewMemory()
	s := NewAuthStore(context.Background(), db)
	ctx := context.Background()

	_, err := s.Register(ctx, userFields("pat@example.com"), "hunter2")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	_, ok := s.Current()
	assert.False(t, ok)

	// Idempotent when nobody is signed in.
	require.NoError(t, s.Logout(ctx))
}

func TestSessionSurvivesRestart(t *testing.T) {
	db := storage.NewMemory()
	ctx := context.Background()

	s := NewAuthStore(ctx, db)
	_, err := s.Register(ctx, userFields("pat@example.com"), "hunter2")
	require.NoError(t, err)

	reloaded := NewAuthStore(ctx, db)
	current, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, "pat@example.com", current.Email)
	assert.Empty(t, current.Password)

	// Accounts survive too: login works against the reloaded store.
	require.NoError(t, reloaded.Logout(ctx))
	_, err = reloaded.Login(ctx, "pat@example.com", "hunter2")
	require.NoError(t, err)
}

func TestUpdateSession(t *testing.T) {
	db := storage.NewMemory()
	ctx := context.Background()

	s := NewAuthStore(ctx, db)
	_, err := s.Register(ctx, userFields("pat@example.com"), "hunter2")
	require.NoError(t, err)

	phone := "555-0199"
	city := "Portland"
	updated, err := s.UpdateSession(ctx, models.UserUpdate{Phone: &phone, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Portland", updated.City)

	// The account record was updated alongside the session.
	reloaded := NewAuthStore(ctx, db)
	require.NoError(t, reloaded.Logout(ctx))
	user, err := reloaded.Login(ctx, "pat@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "555-0199", user.Phone)
	assert.Equal(t, "Portland", user.City)
}

func TestUpdateSessionWithoutSession(t *testing.T) {
	s := NewAuthStore(context.Background(), storage.NewMemory())

	phone := "555-0199"
	_, err := s.UpdateSession(context.Background(), models.UserUpdate{Phone: &phone})
	require.ErrorIs(t, err, ErrNoSession)
}

func TestPaymentRoundTrip(t *testing.T) {
	db := storage.NewMemory()
	ctx := context.Background()

	s := NewAuthStore(ctx, db)
	_, ok := s.Payment()
	require.False(t, ok)

	details := models.PaymentDetails{
		CardNumber:     "4111111111111111",
		CardHolder:     "Pat Doe",
		ExpiryDate:     "12/27",
		CVV:            "123",
		BillingAddress: "1 Main St",
	}
	require.NoError(t, s.SavePayment(ctx, details))

	got, ok := s.Payment()
	require.True(t, ok)
	assert.Equal(t, details, got)

	reloaded := NewAuthStore(ctx, db)
	got, ok = reloaded.Payment()
	require.True(t, ok)
	assert.Equal(t, details, got)
}

func TestCorruptAccountsStartEmpty(t *testing.T) {
	db := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, db.Put(ctx, storage.KeyUsers, []byte("not json at all")))

	s := NewAuthStore(ctx, db)
	_, err := s.Login(ctx, "pat@example.com", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Registration works over the discarded data.
	_, err = s.Register(ctx, userFields("pat@example.com"), "hunter2")
	require.NoError(t, err)
}
