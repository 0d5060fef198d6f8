package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/propertypal/pms-backend/models"
	"github.com/propertypal/pms-backend/notify"
)

type notificationList struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// GetNotifications returns the event log in append order; newest-last is the
// contract, presentation decides how to display it.
func GetNotifications(sink *notify.Sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := sink.List()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(notificationList{Notifications: events, Unread: sink.Unread()})
	}
}

func MarkNotificationRead(sink *notify.Sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !sink.MarkRead(mux.Vars(r)["id"]) {
			http.Error(w, "Notification not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Notification marked as read"})
	}
}

func MarkAllNotificationsRead(sink *notify.Sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sink.MarkAllRead()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "All notifications marked as read"})
	}
}
