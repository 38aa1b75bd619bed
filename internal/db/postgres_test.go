package db

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adbudget/internal/config/configs"
)

func pgConfig(t *testing.T, raw string) configs.Postgres {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return configs.Postgres{Addr: *u}
}

func TestPoolConfig(t *testing.T) {
	cfg := pgConfig(t, "postgres://u:p@localhost:5432/budgets?sslmode=disable")
	cfg.MaxConns = 8
	cfg.MinConns = 2

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, "budgets", pc.ConnConfig.Database)
}

func TestPoolConfigRejectsInvertedSizes(t *testing.T) {
	cfg := pgConfig(t, "postgres://u:p@localhost:5432/budgets")
	cfg.MaxConns = 1
	cfg.MinConns = 4

	_, err := poolConfig(cfg)
	assert.Error(t, err)
}
