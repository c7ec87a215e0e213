package main

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// currentSchemaVersion is the latest store schema version.
// Bump this when adding migrations.
const currentSchemaVersion = 1

// openStore opens (creating if needed) the SQLite run store at path.
func openStore(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	// Pragmas in the connection string apply to every pooled connection.
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err = verifyWALMode(db); err != nil {
		db.Close()
		return nil, err
	}
	if err = migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	_ = os.Chmod(path, 0600)

	return db, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: initial schema.
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS runs (
		  id         TEXT PRIMARY KEY,
		  kind       TEXT NOT NULL,
		  created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS vcv_objects (
		  run_id        TEXT NOT NULL REFERENCES runs(id),
		  seq           INTEGER NOT NULL,
		  name          TEXT,
		  dimensions    INTEGER NOT NULL,
		  shape         REAL NOT NULL,
		  covariance    REAL NOT NULL,
		  recovered     REAL NOT NULL,
		  matrix_json   TEXT NOT NULL,
		  location_json TEXT NOT NULL,
		  PRIMARY KEY (run_id, seq)
		);

		CREATE INDEX IF NOT EXISTS idx_vcv_objects_name
		ON vcv_objects(name)
		WHERE name IS NOT NULL;

		CREATE TABLE IF NOT EXISTS study_points (
		  run_id     TEXT NOT NULL REFERENCES runs(id),
		  seq        INTEGER NOT NULL,
		  dimensions INTEGER NOT NULL,
		  requested  REAL NOT NULL,
		  recovered  REAL NOT NULL,
		  PRIMARY KEY (run_id, seq)
		);
		`
		if _, err = db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err = setUserVersion(db, currentSchemaVersion); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

// getUserVersion returns the current schema version (user_version pragma).
func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// setUserVersion sets the schema version (user_version pragma).
func setUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

// newRunID generates a sortable unique run identifier.
func newRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// persistObjects writes one run and its objects to the store at path.
func persistObjects(logger zerolog.Logger, path, kind string, payloads []objectPayload) error {
	db, err := openStore(path)
	if err != nil {
		return err
	}
	defer db.Close()

	runID := newRunID()
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(
		"INSERT INTO runs (id, kind, created_at) VALUES (?, ?, ?)",
		runID, kind, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO vcv_objects
		  (run_id, seq, name, dimensions, shape, covariance, recovered, matrix_json, location_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare objects: %w", err)
	}
	defer stmt.Close()

	var matrixJSON, locationJSON []byte
	for seq, p := range payloads {
		if matrixJSON, err = json.Marshal(p.Matrix); err != nil {
			return fmt.Errorf("marshal matrix (seq %d): %w", seq, err)
		}
		if locationJSON, err = json.Marshal(p.Location); err != nil {
			return fmt.Errorf("marshal location (seq %d): %w", seq, err)
		}
		if _, err = stmt.Exec(
			runID, seq, p.Name, p.Dimensions, p.Shape, p.Covariance, p.Recovered,
			string(matrixJSON), string(locationJSON),
		); err != nil {
			return fmt.Errorf("insert object (seq %d): %w", seq, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	logger.Info().Str("run", runID).Str("kind", kind).Int("objects", len(payloads)).Str("db", path).Msg("run persisted")
	return nil
}

// persistStudy writes one study run and its sample points to the store.
func persistStudy(logger zerolog.Logger, path string, points []studyPoint) error {
	db, err := openStore(path)
	if err != nil {
		return err
	}
	defer db.Close()

	runID := newRunID()
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(
		"INSERT INTO runs (id, kind, created_at) VALUES (?, ?, ?)",
		runID, "study", time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO study_points (run_id, seq, dimensions, requested, recovered)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare points: %w", err)
	}
	defer stmt.Close()

	for seq, pt := range points {
		if _, err = stmt.Exec(runID, seq, pt.Dimensions, pt.Requested, pt.Recovered); err != nil {
			return fmt.Errorf("insert point (seq %d): %w", seq, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	logger.Info().Str("run", runID).Int("points", len(points)).Str("db", path).Msg("study persisted")
	return nil
}
