package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"items-api/internal/models"
)

// SQLiteStore is a local item store for development and the standalone
// server. Items are stored as JSON documents in a two-column table, which
// keeps the arbitrary-field model intact without a relational schema.
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// collection table exists.
func NewSQLiteStore(path, table string) (*SQLiteStore, error) {
	if table == "" {
		table = "items"
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite handles one writer at a time.
	db.SetMaxOpenConns(1)

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
		pk TEXT PRIMARY KEY,
		doc TEXT NOT NULL
	)`, table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	return &SQLiteStore{db: db, table: table}, nil
}

// Put inserts a full item; the primary-key constraint stands in for the
// attribute_not_exists condition.
func (s *SQLiteStore) Put(ctx context.Context, item models.Item) error {
	doc, err := json.Marshal(item)
	if err != nil {
		return &StoreError{Op: "put", PK: item.PK(), Err: err}
	}

	query := fmt.Sprintf("INSERT INTO %q (pk, doc) VALUES (?, ?)", s.table)
	_, err = s.db.ExecContext(ctx, query, item.PK(), string(doc))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Get performs a point lookup by pk.
func (s *SQLiteStore) Get(ctx context.Context, pk string) (models.Item, error) {
	query := fmt.Sprintf("SELECT doc FROM %q WHERE pk = ?", s.table)

	var doc string
	err := s.db.QueryRowContext(ctx, query, pk).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeDoc(pk, doc)
}

// Update merges the field set into the stored document inside a
// transaction, so the read-merge-write is atomic with respect to other
// writers on this store.
func (s *SQLiteStore) Update(ctx context.Context, pk string, fields map[string]interface{}) (models.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &StoreError{Op: "update", PK: pk, Err: err}
	}
	defer tx.Rollback()

	selectQuery := fmt.Sprintf("SELECT doc FROM %q WHERE pk = ?", s.table)
	var doc string
	err = tx.QueryRowContext(ctx, selectQuery, pk).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	item, err := decodeDoc(pk, doc)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		if k == models.FieldPK || k == models.FieldCreatedAt {
			continue
		}
		item[k] = v
	}

	updated, err := json.Marshal(item)
	if err != nil {
		return nil, &StoreError{Op: "update", PK: pk, Err: err}
	}

	updateQuery := fmt.Sprintf("UPDATE %q SET doc = ? WHERE pk = ?", s.table)
	if _, err := tx.ExecContext(ctx, updateQuery, string(updated), pk); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "update", PK: pk, Err: err}
	}
	return item, nil
}

// Delete removes an item; zero rows affected means the pk did not exist.
func (s *SQLiteStore) Delete(ctx context.Context, pk string) error {
	query := fmt.Sprintf("DELETE FROM %q WHERE pk = ?", s.table)
	result, err := s.db.ExecContext(ctx, query, pk)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &StoreError{Op: "delete", PK: pk, Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Scan returns up to limit items in unspecified order.
func (s *SQLiteStore) Scan(ctx context.Context, limit int32) ([]models.Item, error) {
	query := fmt.Sprintf("SELECT pk, doc FROM %q LIMIT ?", s.table)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var pk, doc string
		if err := rows.Scan(&pk, &doc); err != nil {
			return nil, err
		}
		item, err := decodeDoc(pk, doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Ping upserts the fixed connectivity-check record unconditionally.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	record := models.Item{
		models.FieldPK:        pingKey,
		models.FieldUpdatedAt: models.Timestamp(time.Now()),
	}
	doc, err := json.Marshal(record)
	if err != nil {
		return &StoreError{Op: "ping", PK: pingKey, Err: err}
	}

	query := fmt.Sprintf(
		"INSERT INTO %q (pk, doc) VALUES (?, ?) ON CONFLICT(pk) DO UPDATE SET doc = excluded.doc",
		s.table,
	)
	_, err = s.db.ExecContext(ctx, query, pingKey, string(doc))
	return err
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func decodeDoc(pk, doc string) (models.Item, error) {
	var item models.Item
	if err := json.Unmarshal([]byte(doc), &item); err != nil {
		return nil, &StoreError{Op: "get", PK: pk, Err: err}
	}
	return item, nil
}
