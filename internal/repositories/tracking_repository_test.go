package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingIncrementLogin_Upserts(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewTrackingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_trackings" (.|\n)*ON CONFLICT \("user_id"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	err := repo.IncrementLogin(context.Background(), 7)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingFindByUserID_Miss(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewTrackingRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_trackings" WHERE user_id = \$1`).
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	tracking, err := repo.FindByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, tracking)

	assert.NoError(t, mock.ExpectationsWereMet())
}
