package ports

import (
	"context"

	"aocsync/internal/domain"
)

// InputFetcher retrieves the puzzle input of one day from the remote site
type InputFetcher interface {
	FetchInput(ctx context.Context, session string, year domain.Year, day domain.Day) (string, error)
}
