package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"notekeep/models"
	"notekeep/store"
	"notekeep/token"
)

// Auth handles registration and login. Passwords are bcrypt-hashed; the
// plaintext never reaches the store or the logs.
type Auth struct {
	store  store.Store
	tokens *token.Service
	log    zerolog.Logger
}

func NewAuth(st store.Store, tokens *token.Service, log zerolog.Logger) *Auth {
	return &Auth{store: st, tokens: tokens, log: log.With().Str("component", "auth").Logger()}
}

// LoginResult carries the issued token together with the identity it
// encodes, so clients never have to decode the token themselves.
type LoginResult struct {
	Token    string
	UserID   int
	Username string
}

func (a *Auth) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyCredentials
	}

	// Uniqueness is checked here; the store's InsertUser does not re-check.
	_, err := a.store.GetUserByUsername(ctx, username)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := a.store.InsertUser(ctx, &models.User{Username: username, PasswordHash: string(hash)}); err != nil {
		return err
	}

	audit(ctx, a.store, a.log, "registered", username)
	return nil
}

func (a *Auth) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := a.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	signed, err := a.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	audit(ctx, a.store, a.log, "logged in", user.Username)
	return &LoginResult{Token: signed, UserID: user.ID, Username: user.Username}, nil
}
