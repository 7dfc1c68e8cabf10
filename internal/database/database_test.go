package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteFile(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost/db"))
	assert.True(t, IsPostgres("postgresql://localhost/db"))
	assert.False(t, IsPostgres("travelbook.db"))
	assert.False(t, IsPostgres(":memory:"))
}

func TestDescribe(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "53300", Message: "too many connections"}
	err := Describe(pgErr)
	assert.Contains(t, err.Error(), "53300")
	assert.True(t, errors.Is(err, pgErr))

	plain := errors.New("boom")
	assert.Equal(t, plain, Describe(plain))
}
