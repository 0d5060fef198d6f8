package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertypal/pms-backend/models"
	"github.com/propertypal/pms-backend/notify"
	"github.com/propertypal/pms-backend/storage"
	"github.com/propertypal/pms-backend/store"
)

var testJWTKey = []byte("test-jwt-key")

type testEnv struct {
	router *mux.Router
	sink   *notify.Sink
}

// newTestEnv wires the full route table over empty in-memory collections.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	db := storage.NewMemory()
	require.NoError(t, db.Put(ctx, storage.KeyLeads, []byte("[]")))
	require.NoError(t, db.Put(ctx, storage.KeyProperties, []byte("[]")))

	leads := store.NewLeadStore(ctx, db)
	properties := store.NewPropertyStore(ctx, db)
	auth := store.NewAuthStore(ctx, db)
	sink := notify.NewSink()

	router := mux.NewRouter()
	Routes(router, leads, properties, auth, sink, testJWTKey)
	return &testEnv{router: router, sink: sink}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) registerAndToken(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/register", "", map[string]string{
		"email":     "pat@example.com",
		"password":  "hunter2",
		"firstName": "Pat",
		"lastName":  "Doe",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	token := env.registerAndToken(t)
	assert.NotEmpty(t, token)

	// Duplicate email.
	rec := env.do(t, http.MethodPost, "/register", "", map[string]string{
		"email":    "pat@example.com",
		"password": "other",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Wrong password and unknown email get the same answer.
	rec = env.do(t, http.MethodPost, "/login", "", map[string]string{"email": "pat@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = env.do(t, http.MethodPost, "/login", "", map[string]string{"email": "nobody@example.com", "password": "hunter2"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = env.do(t, http.MethodPost, "/login", "", map[string]string{"email": "pat@example.com", "password": "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Password)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/register", "", map[string]string{"email": "pat@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/leads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Token abc")
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	rec = env.do(t, http.MethodGet, "/api/leads", "bogus.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLeadEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndToken(t)

	rec := env.do(t, http.MethodPost, "/api/leads", token, map[string]interface{}{
		"firstName":    "Alice",
		"lastName":     "Brown",
		"email":        "alice@example.com",
		"propertyType": "residential",
		"requirement":  "buy",
		"status":       "not-started",
		"source":       "website",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Lead
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	rec = env.do(t, http.MethodGet, "/api/leads", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Lead
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list, 1)

	// Status change publishes a notification.
	rec = env.do(t, http.MethodPut, "/api/leads/"+created.ID, token, map[string]string{"status": "complete"})
	require.Equal(t, http.StatusOK, rec.Code)

	events := env.sink.List()
	require.Len(t, events, 2)
	assert.Equal(t, "New Lead Created", events[0].Title)
	assert.Equal(t, "Lead Status Changed", events[1].Title)
	assert.Equal(t, models.SeveritySuccess, events[1].Severity)
	assert.Equal(t, created.ID, events[1].LeadID)

	rec = env.do(t, http.MethodGet, "/api/leads/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.LeadStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 1, stats.Complete)

	// Updating an unknown id still reports success and logs nothing.
	rec = env.do(t, http.MethodPut, "/api/leads/nonexistent", token, map[string]string{"status": "in-progress"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.sink.List(), 2)

	rec = env.do(t, http.MethodGet, "/api/leads/nonexistent", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/leads/"+created.ID, token, map[string]string{"status": "half-done"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/leads/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/leads", token, nil)
	list = nil
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestPropertyEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndToken(t)

	rec := env.do(t, http.MethodPost, "/api/properties", token, map[string]interface{}{
		"title":        "Lakeside Cottage",
		"propertyType": "residential",
		"listingType":  "sale",
		"price":        320000,
		"priceUnit":    "total",
		"city":         "Springfield",
		"status":       "available",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Property
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	rec = env.do(t, http.MethodPost, "/api/properties/"+created.ID+"/availability", token, map[string]string{"date": "2026-09-15"})
	require.Equal(t, http.StatusOK, rec.Code)
	var entry models.AvailabilityEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, "2026-09-15", entry.Date)
	assert.False(t, entry.Available)

	rec = env.do(t, http.MethodPost, "/api/properties/"+created.ID+"/availability", token, map[string]string{"date": "not-a-date"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/properties/"+created.ID, token, map[string]string{"status": "sold"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/properties/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.PropertyStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 1, stats.Sold)
	assert.Equal(t, 0, stats.Available)
}

func TestNotificationEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndToken(t)

	event := env.sink.Append(notify.Input{Title: "Hello", Severity: models.SeverityInfo})

	rec := env.do(t, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Notifications []models.Notification `json:"notifications"`
		Unread        int                   `json:"unread"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.Len(t, payload.Notifications, 1)
	assert.Equal(t, 1, payload.Unread)

	rec = env.do(t, http.MethodPut, "/api/notifications/nonexistent/read", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/notifications/"+event.ID+"/read", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.sink.Unread())

	env.sink.Append(notify.Input{Title: "Another", Severity: models.SeverityWarning})
	rec = env.do(t, http.MethodPut, "/api/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.sink.Unread())
}

func TestProfileAndPaymentEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndToken(t)

	rec := env.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	assert.Equal(t, "pat@example.com", profile.Email)
	assert.Empty(t, profile.Password)

	rec = env.do(t, http.MethodPut, "/api/profile", token, map[string]string{"city": "Portland"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	assert.Equal(t, "Portland", profile.City)

	rec = env.do(t, http.MethodGet, "/api/payment", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/payment", token, models.PaymentDetails{
		CardNumber: "4111111111111111",
		CardHolder: "Pat Doe",
		ExpiryDate: "12/27",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/payment", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var details models.PaymentDetails
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&details))
	assert.Equal(t, "Pat Doe", details.CardHolder)

	// Logout drops the session; profile reads then 404.
	rec = env.do(t, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndToken(t)

	rec := env.do(t, http.MethodGet, "/api/reports/pdf", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = env.do(t, http.MethodGet, "/api/reports/excel?type=leads", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.NotEmpty(t, rec.Body.Bytes())

	rec = env.do(t, http.MethodGet, "/api/reports/pdf?type=everything", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
