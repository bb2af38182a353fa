package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"notekeep/models"
	"notekeep/store"
)

// Notes implements the note operations, all scoped to the acting user. The
// store's note writes silently no-op on an unknown id/user pair, so every
// mutation here checks existence first and maps absence to ErrNoteNotFound.
type Notes struct {
	store store.Store
	log   zerolog.Logger
}

func NewNotes(st store.Store, log zerolog.Logger) *Notes {
	return &Notes{store: st, log: log.With().Str("component", "notes").Logger()}
}

func (s *Notes) Create(ctx context.Context, userID int, username, title, content string, categoryID *int) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return ErrEmptyNoteFields
	}

	note := &models.Note{
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
		UserID:     userID,
		Archived:   false,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.store.InsertNote(ctx, note); err != nil {
		return err
	}

	audit(ctx, s.store, s.log, "created note", username)
	return nil
}

func (s *Notes) List(ctx context.Context, userID int) ([]models.NoteView, error) {
	return s.store.ListNotesByUser(ctx, userID)
}

// Update replaces title, content and category. The archived flag only
// changes through ToggleArchive.
func (s *Notes) Update(ctx context.Context, id, userID int, username, title, content string, categoryID *int) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return ErrEmptyNoteFields
	}

	note, err := s.get(ctx, id, userID)
	if err != nil {
		return err
	}
	note.Title = title
	note.Content = content
	note.CategoryID = categoryID
	if err := s.store.UpdateNote(ctx, note); err != nil {
		return err
	}

	audit(ctx, s.store, s.log, "updated note", username)
	return nil
}

// ToggleArchive flips the archived flag and returns the new state.
func (s *Notes) ToggleArchive(ctx context.Context, id, userID int, username string) (bool, error) {
	note, err := s.get(ctx, id, userID)
	if err != nil {
		return false, err
	}
	archived := !note.Archived
	if err := s.store.SetArchived(ctx, id, userID, archived); err != nil {
		return false, err
	}

	action := "archived note"
	if !archived {
		action = "unarchived note"
	}
	audit(ctx, s.store, s.log, action, username)
	return archived, nil
}

func (s *Notes) Delete(ctx context.Context, id, userID int, username string) error {
	if _, err := s.get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.store.DeleteNote(ctx, id, userID); err != nil {
		return err
	}

	audit(ctx, s.store, s.log, "deleted note", username)
	return nil
}

func (s *Notes) get(ctx context.Context, id, userID int) (*models.Note, error) {
	note, err := s.store.GetNote(ctx, id, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	return note, err
}
