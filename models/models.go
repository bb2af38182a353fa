package models

import "time"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Note struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID *int      `json:"categoryId"`
	UserID     int       `json:"userId"`
	Archived   bool      `json:"archived"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NoteView is the shape returned by list endpoints: a note with its category
// and owner resolved to display strings.
type NoteView struct {
	Note
	CategoryName string `json:"categoryName"`
	Author       string `json:"author"`
}

// LogEntry is a single row of the append-only audit trail. It is never
// exposed through the API.
type LogEntry struct {
	ID     int       `json:"id"`
	Action string    `json:"action"`
	User   string    `json:"user"`
	Time   time.Time `json:"time"`
}
