package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"go-redstore/middleware"
	"go-redstore/models"
	"go-redstore/store"
	"go-redstore/utils"
)

// UserController handles registration, login and profile requests
type UserController struct {
	Users *store.Users
}

// NewUserController creates a new UserController
func NewUserController(users *store.Users) *UserController {
	return &UserController{Users: users}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !strings.Contains(body.Email, "@") {
		http.Error(w, "Valid email required", http.StatusBadRequest)
		return
	}
	if len(body.Password) < 6 {
		http.Error(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{Name: body.Name, Email: body.Email, PasswordHash: string(hashed)}
	err = uc.Users.Create(r.Context(), user)
	if errors.Is(err, store.ErrUserExists) {
		http.Error(w, "User already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to create user")
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles user authentication and sets the user cookie
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, ok, err := uc.Users.Get(r.Context(), creds.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to load user")
		http.Error(w, "Error loading user", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(user.Name, user.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.UserCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{
		"token":   token,
		"message": "Logged In Successfully",
	})
}

// Logout clears the user cookie
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.UserCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeMessage(w, http.StatusOK, "Logged out")
}

// GetProfile retrieves the authenticated user's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.UserClaims(r)
	if claims == nil {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}

	user, ok, err := uc.Users.Get(r.Context(), claims.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to load user")
		http.Error(w, "Error loading user", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	user.PasswordHash = ""
	writeJSON(w, http.StatusOK, user)
}
