package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/propertypal/pms-backend/models"
	"github.com/propertypal/pms-backend/store"
)

func CreateProperty(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields models.PropertyFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			slog.Warn("decoding property payload", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := fields.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		property, err := properties.Create(r.Context(), fields)
		if err != nil {
			slog.Error("creating property", "error", err)
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(property)
	}
}

func GetAllProperties(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(properties.List())
	}
}

func GetProperty(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := properties.GetByID(mux.Vars(r)["id"])
		if !ok {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(property)
	}
}

func UpdateProperty(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var upd models.PropertyUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			slog.Warn("decoding property update", "error", err)
			http.Error(w, "Invalid update data", http.StatusBadRequest)
			return
		}
		if err := upd.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if _, err := properties.Update(r.Context(), id, upd); err != nil {
			slog.Error("updating property", "id", id, "error", err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Property updated successfully"})
	}
}

func DeleteProperty(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := properties.Remove(r.Context(), id); err != nil {
			slog.Error("deleting property", "id", id, "error", err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Property deleted successfully"})
	}
}

// ToggleAvailability flips one calendar date on the property's availability
// list. The date must be an ISO day, e.g. "2024-03-01".
func ToggleAvailability(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var payload struct {
			Date string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			slog.Warn("decoding availability payload", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if _, err := time.Parse("2006-01-02", payload.Date); err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		entry, err := properties.ToggleAvailability(r.Context(), id, payload.Date)
		if err != nil {
			slog.Error("toggling availability", "id", id, "error", err)
			http.Error(w, "Failed to toggle availability", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entry)
	}
}

func GetPropertyStats(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(properties.Stats())
	}
}
