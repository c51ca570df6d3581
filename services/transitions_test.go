package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkTaskDone(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("flips a pending task", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "tasks" SET .+ WHERE id = \$\d+ AND user_id = \$\d+ AND status <> \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		flipped, err := MarkTaskDone(db, 42, 7, now)
		require.NoError(t, err)
		assert.True(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	// A racing duplicate complete fails the status guard and must not win,
	// otherwise both requests would award XP for one task.
	t.Run("already done is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "tasks" SET .+ WHERE id = \$\d+ AND user_id = \$\d+ AND status <> \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		flipped, err := MarkTaskDone(db, 42, 7, now)
		require.NoError(t, err)
		assert.False(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkSubmitted(t *testing.T) {
	t.Run("submits an in-progress application", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "user_colleges" SET .+ WHERE id = \$\d+ AND user_id = \$\d+ AND status NOT IN`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		flipped, err := MarkSubmitted(db, 42, 7)
		require.NoError(t, err)
		assert.True(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already submitted is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "user_colleges" SET .+ WHERE id = \$\d+ AND user_id = \$\d+ AND status NOT IN`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		flipped, err := MarkSubmitted(db, 42, 7)
		require.NoError(t, err)
		assert.False(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkDecision(t *testing.T) {
	t.Run("first decision wins the guard", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "user_colleges" SET .+ WHERE id = \$\d+ AND user_id = \$\d+ AND decision = \$\d+ AND status IN`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		first, err := MarkDecision(db, 42, 7, "accepted")
		require.NoError(t, err)
		assert.True(t, first)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	// A waitlist flip still lands but reports false so no second XP award.
	t.Run("later change reports not-first", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "user_colleges" SET .+ WHERE id = \$\d+ AND user_id = \$\d+ AND decision = \$\d+ AND status IN`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE "user_colleges" SET .+ WHERE id = \$\d+ AND user_id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		first, err := MarkDecision(db, 42, 7, "accepted")
		require.NoError(t, err)
		assert.False(t, first)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkOnboardingComplete(t *testing.T) {
	t.Run("first call flips the flag", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "users" SET .+ WHERE id = \$\d+ AND onboarding_complete = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		flipped, err := MarkOnboardingComplete(db, 7)
		require.NoError(t, err)
		assert.True(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat call is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "users" SET .+ WHERE id = \$\d+ AND onboarding_complete = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		flipped, err := MarkOnboardingComplete(db, 7)
		require.NoError(t, err)
		assert.False(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkProfileSetupDone(t *testing.T) {
	t.Run("first completion flips the flag", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "users" SET .+ WHERE id = \$\d+ AND profile_setup_done = \$\d+ AND full_name <> '' AND grad_year <> 0`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		flipped, err := MarkProfileSetupDone(db, 7)
		require.NoError(t, err)
		assert.True(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incomplete or already-awarded profile is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "users" SET .+ WHERE id = \$\d+ AND profile_setup_done = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		flipped, err := MarkProfileSetupDone(db, 7)
		require.NoError(t, err)
		assert.False(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
