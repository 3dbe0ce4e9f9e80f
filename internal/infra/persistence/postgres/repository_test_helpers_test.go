package postgres

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMockDB returns a GORM handle over go-sqlmock. Queries are matched as regular expressions.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return db, mock
}

// newMockDBWithReplica registers a second sqlmock as a dbresolver replica, the way go-lib wires
// POSTGRES_REPLICAS_*. The replica mock has no expectations, so any read routed to it fails.
func newMockDBWithReplica(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, sqlmock.Sqlmock) {
	t.Helper()

	db, primary := newMockDB(t)

	replicaDB, replica, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	require.NoError(t, db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{gormpostgres.New(gormpostgres.Config{Conn: replicaDB})},
	})))

	t.Cleanup(func() {
		require.NoError(t, replica.ExpectationsWereMet())
		_ = replicaDB.Close()
	})

	return db, primary, replica
}
