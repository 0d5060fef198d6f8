package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/propertypal/pms-backend/models"
	"github.com/propertypal/pms-backend/store"
	"github.com/propertypal/pms-backend/utils"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

type Response struct {
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

type registerPayload struct {
	models.UserFields
	Password string `json:"password"`
}

func RegisterUser(auth *store.AuthStore, jwtKey []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			slog.Warn("decoding register payload", "error", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if payload.Email == "" || payload.Password == "" {
			http.Error(w, "Email and password are required", http.StatusBadRequest)
			return
		}

		user, err := auth.Register(r.Context(), payload.UserFields, payload.Password)
		if errors.Is(err, store.ErrEmailTaken) {
			slog.Warn("email already registered", "email", payload.Email)
			http.Error(w, "Email already exists", http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("registering user", "error", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		token, err := utils.GenerateJWT(jwtKey, user.ID)
		if err != nil {
			slog.Error("generating token", "error", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Response{Message: "User registered successfully", Token: token, User: &user})
	}
}

func LoginUser(auth *store.AuthStore, jwtKey []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			slog.Warn("decoding login payload", "error", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		user, err := auth.Login(r.Context(), credentials.Email, credentials.Password)
		if errors.Is(err, store.ErrInvalidCredentials) {
			// One message for both unknown email and wrong password.
			slog.Warn("failed login attempt", "email", credentials.Email)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		if err != nil {
			slog.Error("logging in", "error", err)
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		token, err := utils.GenerateJWT(jwtKey, user.ID)
		if err != nil {
			slog.Error("generating token", "error", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Login successful", Token: token, User: &user})
	}
}

func LogoutUser(auth *store.AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := auth.Logout(r.Context()); err != nil {
			slog.Error("logging out", "error", err)
			http.Error(w, "Logout failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Logged out"})
	}
}

func GetProfile(auth *store.AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.Current()
		if !ok {
			http.Error(w, "No active session", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

func UpdateProfile(auth *store.AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var upd models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			slog.Warn("decoding profile update", "error", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		user, err := auth.UpdateSession(r.Context(), upd)
		if errors.Is(err, store.ErrNoSession) {
			http.Error(w, "No active session", http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("updating profile", "error", err)
			http.Error(w, "Failed to update profile", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

func GetPayment(auth *store.AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, ok := auth.Payment()
		if !ok {
			http.Error(w, "No payment details saved", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(details)
	}
}

func SavePayment(auth *store.AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var details models.PaymentDetails
		if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
			slog.Warn("decoding payment details", "error", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if err := auth.SavePayment(r.Context(), details); err != nil {
			slog.Error("saving payment details", "error", err)
			http.Error(w, "Failed to save payment details", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Payment details saved"})
	}
}
