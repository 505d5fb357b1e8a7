package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"aocsync/internal/domain"
	"aocsync/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Ledger implements ports.DownloadLedger using SQLite
type Ledger struct {
	db     *sql.DB
	dbPath string
}

// Ensure Ledger implements DownloadLedger
var _ ports.DownloadLedger = (*Ledger)(nil)

// OpenLedger opens the ledger of the workspace at root, in the XDG data directory
func OpenLedger(root string) (*Ledger, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace path: %w", err)
	}
	return OpenLedgerAt(databasePath(abs))
}

// OpenLedgerAt opens the ledger stored in dbPath
func OpenLedgerAt(dbPath string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS fetches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			day INTEGER NOT NULL,
			bytes INTEGER NOT NULL,
			sha256 TEXT NOT NULL,
			overwritten INTEGER NOT NULL,
			fetched_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_fetches_year ON fetches(year, day);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Ledger{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path
func (l *Ledger) Path() string {
	return l.dbPath
}

// Close closes the database connection
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record appends one fetch to the ledger
func (l *Ledger) Record(rec domain.FetchRecord) error {
	_, err := l.db.Exec(`
		INSERT INTO fetches (run_id, year, day, bytes, sha256, overwritten, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.RunID, int(rec.Year), int(rec.Day), rec.Bytes, rec.SHA256, boolToInt(rec.Overwritten), rec.FetchedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record fetch: %w", err)
	}
	return nil
}

// List returns the fetches of a year, or of every year when year is 0, oldest first
func (l *Ledger) List(year domain.Year) ([]domain.FetchRecord, error) {
	query := `SELECT run_id, year, day, bytes, sha256, overwritten, fetched_at FROM fetches`
	var args []any
	if year != 0 {
		query += ` WHERE year = ?`
		args = append(args, int(year))
	}
	query += ` ORDER BY id`

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer rows.Close()

	var records []domain.FetchRecord
	for rows.Next() {
		var (
			rec       domain.FetchRecord
			y, d      int
			fetchedAt int64
		)
		if err := rows.Scan(&rec.RunID, &y, &d, &rec.Bytes, &rec.SHA256, &rec.Overwritten, &fetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		rec.Year = domain.Year(y)
		rec.Day = domain.Day(d)
		rec.FetchedAt = time.Unix(0, fetchedAt).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// databasePath returns the path for the SQLite database
func databasePath(root string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "aocsync", hashRoot(root)+".db")
}

// hashRoot returns a short hash of the workspace path
func hashRoot(root string) string {
	h := sha256.Sum256([]byte(root))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}
