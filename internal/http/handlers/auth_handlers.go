package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gittydia/IMS-BAO/internal/auth"
	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
)

// RegisterHandler godoc
// @Summary Register a new admin or student account
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "account details"
// @Success 201 {object} RegisterResult
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Email exists"
// @Router /auth/register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if req.Email == "" || req.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		http.Error(w, "password too short", http.StatusBadRequest)
		return
	}
	if req.Role != "admin" && req.Role != "student" {
		http.Error(w, "role must be 'admin' or 'student'", http.StatusBadRequest)
		return
	}
	if req.Role == "student" && (req.College == "" || req.Program == "") {
		http.Error(w, "college and program required for students", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	user, err := userRepo.CreateUser(models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	entityID := 0
	if req.Role == "student" {
		student, err := studentRepo.Create(models.Student{
			UserID:    &user.ID,
			Firstname: req.Firstname,
			Lastname:  req.Lastname,
			College:   req.College,
			Program:   req.Program,
		})
		if err != nil {
			http.Error(w, "failed to create student profile", http.StatusInternalServerError)
			return
		}
		entityID = student.ID
	}

	token, err := auth.GenerateToken(user, entityID)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}
	if err := sessionStore.Save(r.Context(), token, user.ID); err != nil {
		log.Printf("could not persist session for user %d: %v", user.ID, err)
	}

	writeJSON(w, http.StatusCreated, RegisterResult{
		Message: "registration successful",
		Token:   token,
		User:    user,
	})
}

// LoginHandler godoc
// @Summary Authenticate and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} LoginResult
// @Failure 401 {string} string "Invalid credentials"
// @Router /auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByEmail(creds.Email)
	if err != nil {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	entityID := 0
	if user.Role == "student" {
		if student, err := studentRepo.GetByUserID(user.ID); err == nil {
			entityID = student.ID
		}
	}

	token, err := auth.GenerateToken(user, entityID)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}
	if err := sessionStore.Save(r.Context(), token, user.ID); err != nil {
		log.Printf("could not persist session for user %d: %v", user.ID, err)
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token, User: user})
}

// LogoutHandler godoc
// @Summary Revoke the current session token
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token != "" {
		if err := sessionStore.Revoke(r.Context(), token); err != nil {
			log.Printf("could not revoke session: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

// MeHandler godoc
// @Summary Return the authenticated identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {string} string "Not authenticated"
// @Router /auth/me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	actor, entityID, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := userRepo.GetByID(actor.ID)
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	resp := map[string]any{"user": user}
	if entityID != 0 {
		if student, err := studentRepo.GetByID(entityID); err == nil {
			resp["student"] = student
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
