package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mariabakery-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const ordersChannel = "orders_changed"

// repository persists orders in postgres and implements the live
// snapshot subscription on top of LISTEN/NOTIFY: every write issues a
// pg_notify, every notification triggers a full re-read.
type repository struct {
	db  *sql.DB
	dsn string

	minReconnect time.Duration
	maxReconnect time.Duration
}

func NewRepository(db *sql.DB, dsn string) Store {
	return &repository{
		db:           db,
		dsn:          dsn,
		minReconnect: 10 * time.Second,
		maxReconnect: time.Minute,
	}
}

func (r *repository) AddOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, customer_email, pickup_date, pickup_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, o.CustomerName, o.CustomerEmail, o.PickupDate, o.PickupTime, o.Status).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_name, qty, price)
			VALUES ($1, $2, $3, $4)
		`, o.ID, item.Name, item.Qty, item.Price)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, ordersChannel, o.ID); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	return tx.Commit()
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2
	`, status, orderID)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	if _, err = tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, ordersChannel, orderID); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	return tx.Commit()
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			o.id,
			o.customer_name,
			o.customer_email,
			o.pickup_date,
			o.pickup_time,
			o.status,
			o.created_at,
			COALESCE(i.product_name, ''),
			COALESCE(i.qty, 0),
			COALESCE(i.price, 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		ORDER BY o.created_at, o.id, i.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []Order
		index  = make(map[string]int)
	)

	for rows.Next() {
		var (
			o    Order
			item Item
		)
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.PickupDate,
			&o.PickupTime,
			&o.Status,
			&o.CreatedAt,
			&item.Name,
			&item.Qty,
			&item.Price,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		pos, seen := index[o.ID]
		if !seen {
			pos = len(orders)
			index[o.ID] = pos
			orders = append(orders, o)
		}
		if item.Name != "" {
			orders[pos].Items = append(orders[pos].Items, item)
		}
	}

	return orders, rows.Err()
}

// Subscribe streams full snapshots. The first snapshot is delivered
// immediately; afterwards one is delivered per pg_notify. A slow
// consumer only ever sees the latest snapshot (stale intermediates are
// dropped).
func (r *repository) Subscribe(ctx context.Context) (<-chan []Order, error) {
	listener := pq.NewListener(r.dsn, r.minReconnect, r.maxReconnect, nil)
	if err := listener.Listen(ordersChannel); err != nil {
		listener.Close()
		return nil, fmt.Errorf("listen on %s: %w", ordersChannel, err)
	}

	ch := make(chan []Order, 1)

	go func() {
		defer close(ch)
		defer listener.Close()

		log := logger.FromCtx(ctx).With(zap.String("channel", ordersChannel))

		send := func() {
			orders, err := r.ListAll(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.Error("failed to load order snapshot", zap.Error(err))
				}
				return
			}
			// Latest-wins: drop the undelivered snapshot, if any.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- orders:
			case <-ctx.Done():
			}
		}

		send()

		ping := time.NewTicker(90 * time.Second)
		defer ping.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-listener.Notify:
				send()
			case <-ping.C:
				// Keeps the connection alive and re-syncs after a
				// listener reconnect, which could have missed events.
				if err := listener.Ping(); err != nil {
					log.Warn("listener ping failed", zap.Error(err))
				}
				send()
			}
		}
	}()

	return ch, nil
}
