package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestLoadOrCreateState_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)

	// Without FOR UPDATE two concurrent events read the same XP and the
	// second commit silently drops the first one's delta.
	mock.ExpectQuery(`SELECT \* FROM "gamification_states" WHERE user_id = \$1.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "xp", "level", "current_streak", "longest_streak"}).
			AddRow(3, 7, 120, 2, 4, 6))

	state, err := loadOrCreateState(db, 7)
	require.NoError(t, err)
	assert.Equal(t, 120, state.XP)
	assert.Equal(t, 2, state.Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadOrCreateState_CreatesMissingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "gamification_states"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "gamification_states"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	state, err := loadOrCreateState(db, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), state.UserID)
	assert.Equal(t, 1, state.Level)
	assert.Zero(t, state.XP)
	assert.NoError(t, mock.ExpectationsWereMet())
}
