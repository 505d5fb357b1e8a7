package ports

import "aocsync/internal/domain"

// DownloadLedger keeps a history of fetched inputs.
// It is a record for display; nothing reads it to decide what to fetch.
type DownloadLedger interface {
	Record(rec domain.FetchRecord) error
	// List returns records of a year, or of every year when year is 0, oldest first
	List(year domain.Year) ([]domain.FetchRecord, error)
	Close() error
}
