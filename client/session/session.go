// Package session owns the signed-in identity on the client. The identity and
// its token are persisted together and restored on construction; no operation
// returns an error across the package boundary — callers get a structured
// result instead.
package session

import (
	"context"
	"log"
	"sync"

	"sanjeevika-shop/client/storage"
	"sanjeevika-shop/models"
)

// AuthAPI is the backend collaborator the session store talks to.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Result is what login and register hand back to the UI layer.
type Result struct {
	Success bool
	Message string
}

// Store holds the current identity. Anonymous is represented by a nil user;
// the user and token are always set and cleared together.
type Store struct {
	mu      sync.RWMutex
	storage storage.Store
	auth    AuthAPI
	user    *models.User
	token   string
}

// New restores any persisted session from st. The restore trusts the persisted
// identity and token without a validation round-trip; the backend re-checks
// the token on every authenticated request anyway.
func New(st storage.Store, auth AuthAPI) *Store {
	s := &Store{
		storage: st,
		auth:    auth,
	}

	var user models.User
	var token string
	if st.Get(storage.UserKey, &user) && st.Get(storage.TokenKey, &token) && token != "" {
		s.user = &user
		s.token = token
	}
	return s
}

// Login authenticates against the backend. On success the identity and token
// are stored and persisted together; on any failure the store is left
// unchanged. Concurrent logins are not sequenced: the last response to arrive
// wins.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		log.Println("session: login error:", err)
		return Result{Success: false, Message: "Login failed. Please try again."}
	}

	if !resp.Success || resp.User == nil || resp.Token == "" {
		message := resp.Message
		if message == "" {
			message = "Login failed"
		}
		return Result{Success: false, Message: message}
	}

	s.setSession(resp.User, resp.Token)
	return Result{Success: true, Message: "Login successful"}
}

// Register creates an account and signs in with the same contract as Login.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) Result {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		log.Println("session: registration error:", err)
		return Result{Success: false, Message: "Registration failed. Please try again."}
	}

	if !resp.Success || resp.User == nil || resp.Token == "" {
		message := resp.Message
		if message == "" {
			message = "Registration failed"
		}
		return Result{Success: false, Message: message}
	}

	s.setSession(resp.User, resp.Token)
	return Result{Success: true, Message: "Registration successful"}
}

// Logout tells the backend best-effort, then always clears the local session
// and both persisted keys.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		log.Println("session: logout error:", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.storage.Remove(storage.UserKey)
	s.storage.Remove(storage.TokenKey)
}

// UpdateUser merges the partial edit into the identity and re-persists it.
// A signed-out store ignores the call. The backend is not contacted.
func (s *Store) UpdateUser(update models.UserUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}

	update.Apply(s.user)
	s.storage.Set(storage.UserKey, s.user)
}

// User returns a copy of the current identity, or nil when anonymous.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Token returns the current session token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated is derived from the identity; it has no state of its own.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

func (s *Store) setSession(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.user = &u
	s.token = token
	s.storage.Set(storage.UserKey, s.user)
	s.storage.Set(storage.TokenKey, s.token)
}
