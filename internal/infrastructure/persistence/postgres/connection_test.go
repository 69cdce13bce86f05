package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Password = "secret"

	assert.Equal(t,
		"host=localhost port=5432 dbname=tutorhub user=postgres password=secret sslmode=disable connect_timeout=5",
		cfg.DSN())

	cfg.URL = "postgres://tutor:pw@db.local:5433/book"
	assert.Equal(t, cfg.URL, cfg.DSN())
}

func TestConfig_PoolConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "postgres://tutor:pw@db.local:5433/book?sslmode=disable"
	cfg.MaxConns = 7
	cfg.MinConns = 0

	pc, err := cfg.PoolConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(7), pc.MaxConns)
	assert.Equal(t, time.Hour, pc.MaxConnLifetime)
	assert.Equal(t, "db.local", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "book", pc.ConnConfig.Database)
}

func TestGetMigrations_Ordered(t *testing.T) {
	migrations := GetMigrations()
	require.NotEmpty(t, migrations)

	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, strings.TrimSpace(m.UpSQL), m.Name)
		assert.NotEmpty(t, strings.TrimSpace(m.DownSQL), m.Name)
	}
	assert.Contains(t, migrations[0].UpSQL, "CREATE TABLE IF NOT EXISTS students")
	assert.Contains(t, migrations[1].UpSQL, "ON DELETE CASCADE ON UPDATE CASCADE")
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"connection failure", &pgconn.PgError{Code: "08006"}, true},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"undefined table", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "42P01"}), false},
		{"network error", errors.New("dial tcp: connection refused"), true},
		{"cancelled", context.Canceled, false},
		{"closed", ErrConnectionClosed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestConnection_ClosedRejectsWork(t *testing.T) {
	conn := &Connection{closed: true}

	assert.ErrorIs(t, conn.Ping(context.Background()), ErrConnectionClosed)
	_, err := conn.BeginTx(context.Background(), DefaultTxOptions())
	assert.ErrorIs(t, err, ErrConnectionClosed)
	_, err = conn.Exec(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, ErrConnectionClosed)
}
