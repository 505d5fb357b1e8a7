package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocsync/internal/domain"
)

func TestStatusCommand(t *testing.T) {
	ws, _ := setupTestWorkspace(t)
	writeInputs(t, ws, 2022, 1, 2)
	writeScaffolds(t, ws, 2022, 1)
	writeInputs(t, ws, 2015, 25)

	statuses, err := NewStatusCommand(ws.Store, 0).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, domain.Year(2015), statuses[0].Year)
	assert.Equal(t, domain.Year(2022), statuses[1].Year)

	y2022 := statuses[1]
	require.Len(t, y2022.Days, 25)
	assert.Equal(t, domain.DayStatus{Day: 1, Input: true, Scaffold: true}, y2022.Days[0])
	assert.Equal(t, domain.DayStatus{Day: 2, Input: true}, y2022.Days[1])
	assert.Equal(t, domain.DayStatus{Day: 3}, y2022.Days[2])
	assert.Equal(t, 1, y2022.Complete())
}

func TestStatusCommand_SingleYear(t *testing.T) {
	ws, _ := setupTestWorkspace(t)
	writeInputs(t, ws, 2022, 1)

	statuses, err := NewStatusCommand(ws.Store, 2019).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, domain.Year(2019), statuses[0].Year)
	assert.Equal(t, 0, statuses[0].Complete())
}

func TestStatusCommand_InvalidYear(t *testing.T) {
	ws, _ := setupTestWorkspace(t)

	_, err := NewStatusCommand(ws.Store, -1).Execute(context.Background())
	assert.Error(t, err)
}
