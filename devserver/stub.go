package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type stubUser struct {
	Name         string
	Email        string
	PasswordHash []byte
}

// stubAuth is an in-memory stand-in for the auth API, good enough to click
// through the modal locally. Accounts live until the process exits.
type stubAuth struct {
	mu     sync.Mutex
	users  map[string]stubUser
	logger *slog.Logger
}

func newStubAuth(logger *slog.Logger) *stubAuth {
	return &stubAuth{users: make(map[string]stubUser), logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *registerRequest) Bind(*http.Request) error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return errors.New("Name, email and password are required")
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Bind(*http.Request) error {
	if r.Email == "" || r.Password == "" {
		return errors.New("Email and password are required")
	}
	return nil
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *stubAuth) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", s.login)
	r.Post("/register", s.register)
	return r
}

func respondMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, messageResponse{Message: msg})
}

func (s *stubAuth) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.Bind(r, &req); err != nil {
		respondMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password", "err", err)
		respondMessage(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}

	s.mu.Lock()
	_, exists := s.users[email]
	if !exists {
		s.users[email] = stubUser{Name: req.Name, Email: email, PasswordHash: hash}
	}
	s.mu.Unlock()

	if exists {
		respondMessage(w, r, http.StatusConflict, "Email taken")
		return
	}
	s.logger.Info("stub user registered", "email", email)
	respondMessage(w, r, http.StatusCreated, "Account created")
}

func (s *stubAuth) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.Bind(r, &req); err != nil {
		respondMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	user, ok := s.users[email]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)) != nil {
		respondMessage(w, r, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	s.logger.Info("stub user logged in", "email", email)
	render.JSON(w, r, tokenResponse{Token: uuid.NewString()})
}
