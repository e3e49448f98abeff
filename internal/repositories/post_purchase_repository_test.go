package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurobridge/internal/models/db_models"
	"neurobridge/pkg/utils"
)

func TestPostPurchaseInsert(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPostPurchaseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "post_purchases"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	purchaseID := int64(42)
	err := repo.Insert(context.Background(), &db_models.PostPurchase{
		UserID:     7,
		PostID:     "post-1",
		PurchaseID: &purchaseID,
		Amount:     2000,
		Currency:   "usd",
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPurchaseInsert_UniqueViolation(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPostPurchaseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "post_purchases"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_post_purchases_user_post"})
	mock.ExpectRollback()

	err := repo.Insert(context.Background(), &db_models.PostPurchase{
		UserID: 7,
		PostID: "post-1",
		Amount: 2000,
	})
	assert.ErrorIs(t, err, utils.ErrAlreadyPurchased)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPurchaseFindByUserAndPost_Miss(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPostPurchaseRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "post_purchases" WHERE user_id = \$1 AND post_id = \$2`).
		WithArgs(int64(7), "post-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "post_id"}))

	record, err := repo.FindByUserAndPost(context.Background(), 7, "post-1")
	require.NoError(t, err)
	assert.Nil(t, record)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPurchaseStatsByPost(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPostPurchaseRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_purchases, COALESCE\(SUM\(amount\), 0\) AS total_revenue`).
		WithArgs("post-1").
		WillReturnRows(sqlmock.NewRows([]string{"total_purchases", "total_revenue", "currency"}).
			AddRow(int64(3), int64(6000), "usd"))

	stats, err := repo.StatsByPost(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPurchases)
	assert.Equal(t, int64(6000), stats.TotalRevenue)
	assert.Equal(t, "usd", stats.Currency)

	assert.NoError(t, mock.ExpectationsWereMet())
}
