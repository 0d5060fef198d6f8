package routes

import (
	"github.com/gorilla/mux"

	"github.com/propertypal/pms-backend/controllers"
	"github.com/propertypal/pms-backend/middleware"
	"github.com/propertypal/pms-backend/notify"
	"github.com/propertypal/pms-backend/store"
)

func Routes(router *mux.Router, leads *store.LeadStore, properties *store.PropertyStore, auth *store.AuthStore, sink *notify.Sink, jwtKey []byte) {
	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser(auth, jwtKey)).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser(auth, jwtKey)).Methods("POST")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware(jwtKey))

	authenticated.HandleFunc("/logout", controllers.LogoutUser(auth)).Methods("POST")
	authenticated.HandleFunc("/profile", controllers.GetProfile(auth)).Methods("GET")
	authenticated.HandleFunc("/profile", controllers.UpdateProfile(auth)).Methods("PUT")
	authenticated.HandleFunc("/payment", controllers.GetPayment(auth)).Methods("GET")
	authenticated.HandleFunc("/payment", controllers.SavePayment(auth)).Methods("PUT")

	// Lead routes; /leads/stats must come before /leads/{id}
	authenticated.HandleFunc("/leads", controllers.CreateLead(leads, sink)).Methods("POST")
	authenticated.HandleFunc("/leads", controllers.GetAllLeads(leads)).Methods("GET")
	authenticated.HandleFunc("/leads/stats", controllers.GetLeadStats(leads)).Methods("GET")
	authenticated.HandleFunc("/leads/{id}", controllers.GetLead(leads)).Methods("GET")
	authenticated.HandleFunc("/leads/{id}", controllers.UpdateLead(leads, sink)).Methods("PUT")
	authenticated.HandleFunc("/leads/{id}", controllers.DeleteLead(leads)).Methods("DELETE")

	// Property routes
	authenticated.HandleFunc("/properties", controllers.CreateProperty(properties)).Methods("POST")
	authenticated.HandleFunc("/properties", controllers.GetAllProperties(properties)).Methods("GET")
	authenticated.HandleFunc("/properties/stats", controllers.GetPropertyStats(properties)).Methods("GET")
	authenticated.HandleFunc("/properties/{id}", controllers.GetProperty(properties)).Methods("GET")
	authenticated.HandleFunc("/properties/{id}", controllers.UpdateProperty(properties)).Methods("PUT")
	authenticated.HandleFunc("/properties/{id}", controllers.DeleteProperty(properties)).Methods("DELETE")
	authenticated.HandleFunc("/properties/{id}/availability", controllers.ToggleAvailability(properties)).Methods("POST")

	// Notification routes
	authenticated.HandleFunc("/notifications", controllers.GetNotifications(sink)).Methods("GET")
	authenticated.HandleFunc("/notifications/read-all", controllers.MarkAllNotificationsRead(sink)).Methods("PUT")
	authenticated.HandleFunc("/notifications/{id}/read", controllers.MarkNotificationRead(sink)).Methods("PUT")

	// Report routes
	authenticated.HandleFunc("/reports/pdf", controllers.ExportPDF(leads, properties)).Methods("GET")
	authenticated.HandleFunc("/reports/excel", controllers.ExportExcel(leads, properties)).Methods("GET")
}
