package store

import (
	"context"
	"errors"

	"notekeep/models"
)

// ErrNotFound is returned by reads when no row matches.
var ErrNotFound = errors.New("record not found")

// Store is the persistence interface injected into the services. All note
// reads and writes are scoped by id AND user id; writes on an absent id/user
// pair are silent no-ops, callers that need to distinguish absence read
// first.
type Store interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	InsertUser(ctx context.Context, u *models.User) (int, error)

	ListCategories(ctx context.Context) ([]models.Category, error)

	ListNotesByUser(ctx context.Context, userID int) ([]models.NoteView, error)
	GetNote(ctx context.Context, id, userID int) (*models.Note, error)
	InsertNote(ctx context.Context, n *models.Note) (int, error)
	UpdateNote(ctx context.Context, n *models.Note) error
	SetArchived(ctx context.Context, id, userID int, archived bool) error
	DeleteNote(ctx context.Context, id, userID int) error

	AppendLog(ctx context.Context, action, user string) error
}
