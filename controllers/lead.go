package controllers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/propertypal/pms-backend/models"
	"github.com/propertypal/pms-backend/notify"
	"github.com/propertypal/pms-backend/store"
)

func CreateLead(leads *store.LeadStore, sink *notify.Sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields models.LeadFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			slog.Warn("decoding lead payload", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := fields.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		lead, err := leads.Create(r.Context(), fields)
		if err != nil {
			slog.Error("creating lead", "error", err)
			http.Error(w, "Failed to create lead", http.StatusInternalServerError)
			return
		}

		sink.Append(notify.Input{
			Title:    "New Lead Created",
			Message:  fmt.Sprintf("A new lead %q has been created.", lead.DisplayName()),
			Severity: models.SeveritySuccess,
			LeadID:   lead.ID,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(lead)
	}
}

func GetAllLeads(leads *store.LeadStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(leads.List())
	}
}

func GetLead(leads *store.LeadStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lead, ok := leads.GetByID(mux.Vars(r)["id"])
		if !ok {
			http.Error(w, "Lead not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(lead)
	}
}

// UpdateLead merges the supplied fields into the lead and publishes a
// notification when the update changed the lead's status. Updating an
// unknown id succeeds without touching anything, matching the store.
func UpdateLead(leads *store.LeadStore, sink *notify.Sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var upd models.LeadUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			slog.Warn("decoding lead update", "error", err)
			http.Error(w, "Invalid update data", http.StatusBadRequest)
			return
		}
		if err := upd.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		change, err := leads.Update(r.Context(), id, upd)
		if err != nil {
			slog.Error("updating lead", "id", id, "error", err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		if change.Changed {
			sink.Append(notify.Input{
				Title: "Lead Status Changed",
				Message: fmt.Sprintf("%s's status changed from %q to %q",
					change.Name, change.Old.Label(), change.New.Label()),
				Severity: statusSeverity(change.New),
				LeadID:   id,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Lead updated successfully"})
	}
}

func DeleteLead(leads *store.LeadStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := leads.Remove(r.Context(), id); err != nil {
			slog.Error("deleting lead", "id", id, "error", err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Lead deleted successfully"})
	}
}

func GetLeadStats(leads *store.LeadStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(leads.Stats())
	}
}

func statusSeverity(status models.LeadStatus) models.Severity {
	switch status {
	case models.LeadComplete:
		return models.SeveritySuccess
	case models.LeadInProgress:
		return models.SeverityInfo
	default:
		return models.SeverityWarning
	}
}
