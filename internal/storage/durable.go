package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Durable is the restart-surviving scope, backed by a single-table sqlite
// database. Values are stored as JSON documents, one row per key, so every
// write is a whole-collection overwrite exactly like the in-memory model.
type Durable struct {
	conn   *sql.DB
	logger *zap.Logger
}

func NewDurable(path string, logger *zap.Logger) (*Durable, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	d := &Durable{conn: conn, logger: logger}
	if err := d.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return d, nil
}

func (d *Durable) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := d.conn.Exec(schema)
	return err
}

func (d *Durable) Save(key string, value any) SaveResult {
	data, err := json.Marshal(value)
	if err != nil {
		d.logger.Error("failed to marshal value", zap.String("key", key), zap.Error(err))
		return failed(ErrorUnknown, "failed to save data, please try again")
	}

	_, err = d.conn.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data))
	if err != nil {
		return d.classify(key, err)
	}

	return saved()
}

// classify maps a sqlite failure onto the gateway's error taxonomy. A full
// database or disk is the quota case; everything else is unknown.
func (d *Durable) classify(key string, err error) SaveResult {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		if serr.Code == sqlite3.ErrFull || serr.Code == sqlite3.ErrIoErr {
			return failed(ErrorQuota, "storage quota exceeded, please delete some notes")
		}
	}
	d.logger.Error("failed to save value", zap.String("key", key), zap.Error(err))
	return failed(ErrorUnknown, "failed to save data, please try again")
}

func (d *Durable) Load(key string, dest any) bool {
	var data string
	err := d.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		d.logger.Error("failed to load value", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// Corrupt data is treated as missing data.
		d.logger.Warn("discarding corrupt value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (d *Durable) Delete(key string) SaveResult {
	if _, err := d.conn.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return d.classify(key, err)
	}
	return saved()
}

func (d *Durable) Close() error {
	return d.conn.Close()
}
