// Package testutil provides testing utilities for repository and use case tests.
//
// Repositories are exercised against go-sqlmock so tests run without a database:
//
//	db, mock := testutil.NewMockDB(t)
//	mock.ExpectQuery(`SELECT id FROM users`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
//
// Expectations are verified automatically when the test finishes.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewMockDB returns a sqlmock-backed *sql.DB. Queries are matched with regular
// expressions. The connection is closed and all expectations are checked on cleanup.
func NewMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "failed to create sqlmock")

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "unmet sqlmock expectations")
		_ = db.Close()
	})

	return db, mock
}
