package db

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"notekeep/models"
)

// DefaultCategories is the static category set seeded at startup. Categories
// are never created through the API.
var DefaultCategories = []models.Category{
	{ID: 1, Name: "Personal"},
	{ID: 2, Name: "Work"},
	{ID: 3, Name: "Study"},
	{ID: 4, Name: "Ideas"},
	{ID: 5, Name: "Other"},
}

// Open connects to the database for the given driver and creates the schema
// if it does not exist yet.
func Open(driver, dsn string) (*sql.DB, error) {
	d, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrate(d, driver); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func migrate(d *sql.DB, driver string) error {
	var stmts []string
	if driver == "mysql" {
		stmts = mysqlSchema
	} else {
		stmts = sqliteSchema
	}
	for _, stmt := range stmts {
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		category_id INT,
		user_id INT NOT NULL,
		archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS logs (
		id INT AUTO_INCREMENT PRIMARY KEY,
		action VARCHAR(255) NOT NULL,
		username VARCHAR(255) NOT NULL,
		time TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		category_id INTEGER,
		user_id INTEGER NOT NULL,
		archived INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		username TEXT NOT NULL,
		time DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
}

// SeedCategories inserts any default category whose id is not already
// present. Safe to run on every startup.
func SeedCategories(d *sql.DB) error {
	for _, cat := range DefaultCategories {
		var exists int
		err := d.QueryRow("SELECT 1 FROM categories WHERE id = ?", cat.ID).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check category %d: %w", cat.ID, err)
		}
		if _, err := d.Exec("INSERT INTO categories (id, name) VALUES (?, ?)", cat.ID, cat.Name); err != nil {
			return fmt.Errorf("seed category %d: %w", cat.ID, err)
		}
	}
	return nil
}
