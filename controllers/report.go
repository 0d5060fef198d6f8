package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/propertypal/pms-backend/export"
	"github.com/propertypal/pms-backend/store"
)

func snapshot(leads *store.LeadStore, properties *store.PropertyStore) export.Snapshot {
	return export.Snapshot{
		GeneratedAt:   time.Now(),
		Leads:         leads.List(),
		LeadStats:     leads.Stats(),
		Properties:    properties.List(),
		PropertyStats: properties.Stats(),
	}
}

func ExportPDF(leads *store.LeadStore, properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := export.ParseKind(r.URL.Query().Get("type"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data, err := export.BuildPDF(snapshot(leads, properties), kind)
		if err != nil {
			slog.Error("building pdf report", "error", err)
			http.Error(w, "Failed to generate report", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="pms-report.pdf"`)
		w.Write(data)
	}
}

func ExportExcel(leads *store.LeadStore, properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := export.ParseKind(r.URL.Query().Get("type"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data, err := export.BuildExcel(snapshot(leads, properties), kind)
		if err != nil {
			slog.Error("building excel report", "error", err)
			http.Error(w, "Failed to generate report", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="pms-report.xlsx"`)
		w.Write(data)
	}
}
