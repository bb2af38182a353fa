package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"notekeep/db"
	"notekeep/models"
	"notekeep/store"
)

var dbCounter int64

// OpenDB opens a fresh in-memory SQLite database with the schema applied and
// the default categories seeded. Shared cache keeps the database alive across
// the pool's connections; closing is handled via t.Cleanup.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()
	n := atomic.AddInt64(&dbCounter, 1)
	d, err := db.Open("sqlite3", fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.SeedCategories(d); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// OpenStore is OpenDB wrapped in the SQL store.
func OpenStore(t *testing.T) *store.SQLStore {
	t.Helper()
	return store.New(OpenDB(t))
}

// CreateUser inserts a user with a bcrypt-hashed password and returns its id.
func CreateUser(t *testing.T, st store.Store, username, password string) int {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	id, err := st.InsertUser(context.Background(), &models.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}
