/*
	Chatsift
	Copyright (c) 2024 Chatsift contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package feedback persists user feedback about analyses. It is entirely
// outside the parsing core, which writes no state of its own.
package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // register the sqlite3 driver
)

// Entry is one submitted piece of feedback.
type Entry struct {
	ID        string    `json:"id"`
	Submitted time.Time `json:"submitted"`
	Rating    int       `json:"rating"` // 1..5
	Comments  string    `json:"comments,omitempty"`
}

// Store keeps feedback entries in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the feedback database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening feedback DB: %w", err)
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		submitted TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comments TEXT NOT NULL DEFAULT ''
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up feedback table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Add validates and persists one feedback entry, returning it with its
// assigned ID and timestamp.
func (s *Store) Add(ctx context.Context, rating int, comments string) (Entry, error) {
	if rating < 1 || rating > 5 {
		return Entry{}, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	entry := Entry{
		ID:        uuid.NewString(),
		Submitted: time.Now().UTC(),
		Rating:    rating,
		Comments:  comments,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, submitted, rating, comments) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Submitted.Format(time.RFC3339), entry.Rating, entry.Comments)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting feedback: %w", err)
	}
	return entry, nil
}

// List returns all feedback, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, submitted, rating, comments FROM feedback ORDER BY submitted DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var submitted string
		if err := rows.Scan(&entry.ID, &submitted, &entry.Rating, &entry.Comments); err != nil {
			return nil, fmt.Errorf("scanning feedback row: %w", err)
		}
		entry.Submitted, err = time.Parse(time.RFC3339, submitted)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp in feedback row %s: %w", entry.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
