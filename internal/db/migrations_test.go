package db

import (
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adbudget/db/migrations"
)

func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(migrations.FS, ".")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	var last uint = first
	for {
		next, err := src.Next(last)
		if err != nil {
			break
		}
		last = next
	}
	assert.Equal(t, uint(migrations.Version), last)

	up, err := fs.ReadFile(migrations.FS, "000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS brands")
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS campaigns")
}
