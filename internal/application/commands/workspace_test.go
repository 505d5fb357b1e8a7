package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aocsync/internal/adapters/filesystem"
	"aocsync/internal/adapters/gocode"
	"aocsync/internal/adapters/tomlconfig"
	"aocsync/internal/domain"
)

func TestNewWorkspaceCommand(t *testing.T) {
	root := filepath.Join(t.TempDir(), "puzzles")
	ws := Workspace{
		Store:    filesystem.NewRepository(root),
		Renderer: gocode.NewRenderer(),
		Log:      zap.NewNop(),
	}
	configs := tomlconfig.NewStore(root)

	res, err := NewNewWorkspaceCommand(ws, configs, "example.com/puzzles").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, root, res.Root)

	module, err := ws.Store.ModulePath()
	require.NoError(t, err)
	assert.Equal(t, "example.com/puzzles", module)

	cfg, err := configs.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewConfig(), cfg)

	assert.Contains(t, readFile(t, ws, domain.RootAggregatorFile), "var years = []int{}")

	found, err := filesystem.FindRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestNewWorkspaceCommand_ExistingDirectory(t *testing.T) {
	root := t.TempDir()
	ws := Workspace{
		Store:    filesystem.NewRepository(root),
		Renderer: gocode.NewRenderer(),
		Log:      zap.NewNop(),
	}

	_, err := NewNewWorkspaceCommand(ws, tomlconfig.NewStore(root), domain.DefaultModulePath).Execute(context.Background())
	assert.Error(t, err)
}

func TestNewWorkspaceCommand_Validate(t *testing.T) {
	err := (&NewWorkspaceCommand{Module: " "}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module path is required")
}
