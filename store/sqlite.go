// Copyright (c) Microsoft. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	al "github.com/microsoft/agentlab/agentlab"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS messages (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	message    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_session ON messages (session_id, seq);`

// SQLiteStore is a [agentlab.MessageStore] persisting one session's messages
// as JSON rows in a shared SQLite database. Many sessions can share one
// database file; each store handle is scoped to a single session id.
type SQLiteStore struct {
	db        *sql.DB
	sessionID string
}

var _ al.MessageStore = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the message database at path and returns a
// store scoped to sessionID. An empty sessionID gets a fresh random one.
func OpenSQLite(path, sessionID string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open message store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create messages table: %w", err)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return &SQLiteStore{db: db, sessionID: sessionID}, nil
}

// ForSession returns a store handle over the same database scoped to another
// session id.
func (s *SQLiteStore) ForSession(sessionID string) *SQLiteStore {
	return &SQLiteStore{db: s.db, sessionID: sessionID}
}

// SessionID returns the session this store handle is scoped to.
func (s *SQLiteStore) SessionID() string { return s.sessionID }

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) ListMessages(ctx context.Context) ([]al.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT message FROM messages WHERE session_id = ? ORDER BY seq", s.sessionID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var msgs []al.Message
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		var msg al.Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, fmt.Errorf("parse stored message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

func (s *SQLiteStore) AddMessages(ctx context.Context, msgs []al.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO messages (session_id, message) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare append: %w", err)
	}
	defer stmt.Close()

	for i := range msgs {
		raw, err := json.Marshal(msgs[i])
		if err != nil {
			return fmt.Errorf("encode message: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, s.sessionID, string(raw)); err != nil {
			return fmt.Errorf("append message: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Serialize() (map[string]any, error) {
	msgs, err := s.ListMessages(context.Background())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"sessionId": s.sessionID,
		"messages":  msgs,
	}, nil
}
