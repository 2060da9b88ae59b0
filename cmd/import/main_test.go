package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cmd := newImportCmd()
	cmd.SetArgs([]string{"--csv", "accidents.csv"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--database-url")
}

func TestImportCmd_BadCSVFailsBeforeDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accidents.csv")
	require.NoError(t, os.WriteFile(path, []byte("Ubicacion,X,Y\nOak Rd,0,0\n"), 0o600))

	cmd := newImportCmd()
	// база недоступна, но до подключения дело не доходит
	cmd.SetArgs([]string{"--csv", path, "--database-url", "postgres://nobody@127.0.0.1:1/none", "--log-level", "panic"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestImportCmd_FlagDefaultsFromEnv(t *testing.T) {
	t.Setenv("DATASET_PATH", "/data/custom.csv")
	t.Setenv("DATASET_ENCODING", "latin1")

	cmd := newImportCmd()

	assert.Equal(t, "/data/custom.csv", cmd.Flag("csv").DefValue)
	assert.Equal(t, "latin1", cmd.Flag("encoding").DefValue)
	assert.Equal(t, "file://migrations", cmd.Flag("migrations").DefValue)
}
