package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AddOrder(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	newOrder := func() *Order {
		return &Order{
			CustomerName:  "Ada",
			CustomerEmail: "ada@example.com",
			PickupDate:    "2025-06-01",
			PickupTime:    "14:00",
			Status:        StatusPending,
			Items: []Item{
				{Name: "Brownie", Qty: 2, Price: 30},
				{Name: "Lemon Tart", Qty: 1, Price: 70},
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs("Ada", "ada@example.com", "2025-06-01", "14:00", StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("o-1", now))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs("o-1", "Brownie", 2, 30).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs("o-1", "Lemon Tart", 1, 70).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec(`SELECT pg_notify`).
			WithArgs(ordersChannel, "o-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		o := newOrder()
		err = repo.AddOrder(ctx, o)
		assert.NoError(t, err)
		assert.Equal(t, "o-1", o.ID)
		assert.Equal(t, now, o.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		err = repo.AddOrder(ctx, newOrder())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ItemInsertErrorRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("o-1", now))
		mock.ExpectExec(`INSERT INTO order_items`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		err = repo.AddOrder(ctx, newOrder())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(StatusReady, "o-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`SELECT pg_notify`).
			WithArgs(ordersChannel, "o-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.NoError(t, repo.UpdateStatus(ctx, "o-1", StatusReady))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(StatusReady, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.UpdateStatus(ctx, "missing", StatusReady)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET status`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		assert.Error(t, repo.UpdateStatus(ctx, "o-1", StatusReady))
	})
}

func TestRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	columns := []string{
		"id", "customer_name", "customer_email", "pickup_date", "pickup_time",
		"status", "created_at", "product_name", "qty", "price",
	}

	t.Run("GroupsItemsByOrder", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		rows := sqlmock.NewRows(columns).
			AddRow("o-1", "Ada", "ada@example.com", "2025-06-01", "14:00", "pending", now, "Brownie", 2, 30).
			AddRow("o-1", "Ada", "ada@example.com", "2025-06-01", "14:00", "pending", now, "Lemon Tart", 1, 70).
			AddRow("o-2", "Grace", "grace@example.com", "2025-06-01", "15:00", "ready", now, "Vienna Bread", 1, 30)

		mock.ExpectQuery(`(?s)SELECT .* FROM orders o.*LEFT JOIN order_items i`).
			WillReturnRows(rows)

		orders, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Equal(t, "o-1", orders[0].ID)
		assert.Len(t, orders[0].Items, 2)
		assert.Equal(t, StatusPending, orders[0].Status)

		assert.Equal(t, "o-2", orders[1].ID)
		assert.Len(t, orders[1].Items, 1)
		assert.Equal(t, StatusReady, orders[1].Status)
	})

	t.Run("OrderWithoutItems", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		rows := sqlmock.NewRows(columns).
			AddRow("o-1", "Ada", "ada@example.com", "2025-06-01", "14:00", "pending", now, "", 0, 0)

		mock.ExpectQuery(`(?s)SELECT .* FROM orders o`).WillReturnRows(rows)

		orders, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Empty(t, orders[0].Items)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db, "")

		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnError(errors.New("db error"))

		_, err = repo.ListAll(ctx)
		assert.Error(t, err)
	})
}
