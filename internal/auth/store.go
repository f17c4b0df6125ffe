// Package auth provides an in-memory user store with bearer-token
// sessions. Accounts live only for the lifetime of the process.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sync"
)

// Store holds registered users and the tokens issued to them.
type Store struct {
	mu     sync.Mutex
	users  map[string][32]byte // email -> password digest
	tokens map[string]string   // token -> email
}

func NewStore() *Store {
	return &Store{
		users:  make(map[string][32]byte),
		tokens: make(map[string]string),
	}
}

// Signup registers a new user and returns a session token.
func (s *Store) Signup(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("email and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return "", fmt.Errorf("email already registered")
	}
	s.users[email] = sha256.Sum256([]byte(password))
	return s.issueTokenLocked(email)
}

// Login checks credentials and returns a fresh session token.
func (s *Store) Login(email, password string) (string, error) {
	digest := sha256.Sum256([]byte(password))

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[email]
	if !ok || subtle.ConstantTimeCompare(stored[:], digest[:]) != 1 {
		return "", fmt.Errorf("invalid email or password")
	}
	return s.issueTokenLocked(email)
}

// Authenticate resolves a token to the email it was issued for.
func (s *Store) Authenticate(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokens[token]
	return email, ok
}

func (s *Store) issueTokenLocked(email string) (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(b[:])
	s.tokens[token] = email
	return token, nil
}
