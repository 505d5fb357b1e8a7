package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocsync/internal/domain"
)

func TestHistoryCommand(t *testing.T) {
	ws, _ := setupTestWorkspace(t)
	ledger := &memoryLedger{}
	ctx := context.Background()

	_, err := NewDownloadCommand(ws, &fakeFetcher{}, sessionConfig(), 2021, domain.SingleDay(1), WithLedger(ledger)).Execute(ctx)
	require.NoError(t, err)
	_, err = NewDownloadCommand(ws, &fakeFetcher{}, sessionConfig(), 2022, domain.DayRange{First: 1, Last: 2}, WithLedger(ledger)).Execute(ctx)
	require.NoError(t, err)

	all, err := NewHistoryCommand(ledger, 0).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	only2022, err := NewHistoryCommand(ledger, 2022).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, only2022, 2)
	assert.Equal(t, domain.Day(1), only2022[0].Day)
	assert.Equal(t, domain.Day(2), only2022[1].Day)
	assert.Equal(t, only2022[0].RunID, only2022[1].RunID)
	assert.NotEqual(t, all[0].RunID, only2022[0].RunID)
}
