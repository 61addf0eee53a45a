package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)

	assert.Contains(t, names, "migrations/000001_users.up.sql")
	assert.Contains(t, names, "migrations/000001_users.down.sql")
	assert.Contains(t, names, "migrations/000002_predictions.up.sql")
	assert.Contains(t, names, "migrations/000002_predictions.down.sql")
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	err := MigrateDown(nil, 0)
	assert.Error(t, err)
}
