package store

import (
	"context"
	"database/sql"
	"fmt"

	"notekeep/models"
)

// NoCategory is the display name used when a note's category reference does
// not resolve.
const NoCategory = "no category"

// SQLStore implements Store on top of database/sql. It works against both
// the mysql and sqlite3 drivers; the dialect differences live in the db
// package's schema.
type SQLStore struct {
	db *sql.DB
}

func New(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = ?", username).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) InsertUser(ctx context.Context, u *models.User) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)", u.Username, u.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return int(id), nil
}

func (s *SQLStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQLStore) ListNotesByUser(ctx context.Context, userID int) ([]models.NoteView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT n.id, n.title, n.content, n.category_id, n.user_id, n.archived, n.created_at,
		       COALESCE(c.name, ?), u.username
		FROM notes n
		LEFT JOIN categories c ON c.id = n.category_id
		JOIN users u ON u.id = n.user_id
		WHERE n.user_id = ?
		ORDER BY n.created_at DESC, n.id DESC`, NoCategory, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.NoteView{}
	for rows.Next() {
		var v models.NoteView
		err := rows.Scan(&v.ID, &v.Title, &v.Content, &v.CategoryID, &v.UserID,
			&v.Archived, &v.CreatedAt, &v.CategoryName, &v.Author)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, v)
	}
	return notes, rows.Err()
}

func (s *SQLStore) GetNote(ctx context.Context, id, userID int) (*models.Note, error) {
	var n models.Note
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, category_id, user_id, archived, created_at
		FROM notes WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&n.ID, &n.Title, &n.Content, &n.CategoryID, &n.UserID, &n.Archived, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

func (s *SQLStore) InsertNote(ctx context.Context, n *models.Note) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (title, content, category_id, user_id, archived, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.Title, n.Content, n.CategoryID, n.UserID, n.Archived, n.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	return int(id), nil
}

func (s *SQLStore) UpdateNote(ctx context.Context, n *models.Note) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE notes SET title = ?, content = ?, category_id = ?
		WHERE id = ? AND user_id = ?`,
		n.Title, n.Content, n.CategoryID, n.ID, n.UserID)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (s *SQLStore) SetArchived(ctx context.Context, id, userID int, archived bool) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE notes SET archived = ? WHERE id = ? AND user_id = ?", archived, id, userID)
	if err != nil {
		return fmt.Errorf("set archived: %w", err)
	}
	return nil
}

func (s *SQLStore) DeleteNote(ctx context.Context, id, userID int) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM notes WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (s *SQLStore) AppendLog(ctx context.Context, action, user string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO logs (action, username) VALUES (?, ?)", action, user)
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}
