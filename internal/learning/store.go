// Package learning persists per-company classification history and serves
// it back for blending into new predictions.
package learning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kanjoflow/kanjo/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS vendor_history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id  TEXT NOT NULL,
	vendor      TEXT NOT NULL,
	category    TEXT NOT NULL,
	confidence  REAL NOT NULL,
	use_count   INTEGER NOT NULL DEFAULT 1,
	updated_at  TIMESTAMP NOT NULL,
	UNIQUE(company_id, vendor)
);
CREATE INDEX IF NOT EXISTS idx_vendor_history_company ON vendor_history(company_id);
`

// Record is one remembered vendor classification for a company.
type Record struct {
	UpdatedAt  time.Time
	CompanyID  string
	Vendor     string
	Category   string
	Confidence float64
	UseCount   int
}

// Store implements classification history on SQLite.
type Store struct {
	db     *sql.DB
	dbPath string

	bayesMu    sync.Mutex
	bayesCache map[string]*bayesModel
}

// NewStore creates a new SQLite-backed history store.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("dbPath must not be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{
		db:         db,
		dbPath:     dbPath,
		bayesCache: make(map[string]*bayesModel),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// NormalizeVendor canonicalizes a vendor name for history matching.
func NormalizeVendor(vendor string) string {
	return strings.ToLower(strings.Join(strings.Fields(vendor), " "))
}

// RecordClassification remembers a confirmed classification. Repeating the
// same category for a vendor raises confidence; a different category resets
// the record.
func (s *Store) RecordClassification(ctx context.Context, companyID, vendor, category string) error {
	if companyID == "" || vendor == "" || category == "" {
		return errors.New("companyID, vendor and category must not be empty")
	}
	normalized := NormalizeVendor(vendor)

	var current string
	var useCount int
	err := s.db.QueryRowContext(ctx,
		`SELECT category, use_count FROM vendor_history WHERE company_id = ? AND vendor = ?`,
		companyID, normalized).Scan(&current, &useCount)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO vendor_history (company_id, vendor, category, confidence, use_count, updated_at)
			 VALUES (?, ?, ?, ?, 1, ?)`,
			companyID, normalized, category, confidenceFor(1), time.Now())
	case err != nil:
		return fmt.Errorf("failed to query vendor history: %w", err)
	case current == category:
		useCount++
		_, err = s.db.ExecContext(ctx,
			`UPDATE vendor_history SET use_count = ?, confidence = ?, updated_at = ?
			 WHERE company_id = ? AND vendor = ?`,
			useCount, confidenceFor(useCount), time.Now(), companyID, normalized)
	default:
		// The user changed their mind about this vendor; start over.
		_, err = s.db.ExecContext(ctx,
			`UPDATE vendor_history SET category = ?, use_count = 1, confidence = ?, updated_at = ?
			 WHERE company_id = ? AND vendor = ?`,
			category, confidenceFor(1), time.Now(), companyID, normalized)
	}
	if err != nil {
		return fmt.Errorf("failed to record classification: %w", err)
	}

	s.invalidateBayes(companyID)
	return nil
}

// confidenceFor maps a repeat count to a stored confidence.
func confidenceFor(useCount int) float64 {
	confidence := 0.6 + 0.1*float64(useCount-1)
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}

// Lookup returns the remembered classification for a vendor. An exact
// vendor match wins; otherwise the per-company Bayes model takes a guess.
// A nil result with nil error means no usable history exists.
func (s *Store) Lookup(ctx context.Context, companyID, vendor string) (*model.CategoryScore, error) {
	if companyID == "" || vendor == "" {
		return nil, nil
	}
	normalized := NormalizeVendor(vendor)

	var category string
	var confidence float64
	err := s.db.QueryRowContext(ctx,
		`SELECT category, confidence FROM vendor_history WHERE company_id = ? AND vendor = ?`,
		companyID, normalized).Scan(&category, &confidence)
	switch {
	case err == nil:
		return &model.CategoryScore{Category: category, Confidence: confidence}, nil
	case errors.Is(err, sql.ErrNoRows):
		return s.bayesLookup(ctx, companyID, normalized)
	default:
		return nil, fmt.Errorf("failed to look up vendor history: %w", err)
	}
}

// List returns all history records for a company, most recently updated
// first.
func (s *Store) List(ctx context.Context, companyID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT company_id, vendor, category, confidence, use_count, updated_at
		 FROM vendor_history WHERE company_id = ? ORDER BY updated_at DESC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.CompanyID, &r.Vendor, &r.Category, &r.Confidence, &r.UseCount, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vendor history row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendor history: %w", err)
	}

	return records, nil
}
