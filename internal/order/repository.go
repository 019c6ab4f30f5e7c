package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository interface {
	// Save inserts the order and its items when ID is zero, assigning ids,
	// or overwrites the stored order wholesale otherwise.
	Save(ctx context.Context, o *Order) error
	// FindByID returns nil without error when the order does not exist.
	FindByID(ctx context.Context, id int) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	// DeleteByID is idempotent; deleting a missing order is not an error.
	DeleteByID(ctx context.Context, id int) error
}

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Save(ctx context.Context, o *Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if o.ID == 0 {
		err = tx.QueryRow(ctx, `
			INSERT INTO orders (buyer_id, shipping_address_id, billing_address_id, payment_id, total_amount, ordered_on)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			o.BuyerID, o.ShippingAddressID, o.BillingAddressID, o.PaymentID, o.TotalAmount, o.OrderedOn,
		).Scan(&o.ID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE orders
			SET buyer_id=$2, shipping_address_id=$3, billing_address_id=$4, payment_id=$5, total_amount=$6, ordered_on=$7
			WHERE id=$1`,
			o.ID, o.BuyerID, o.ShippingAddressID, o.BillingAddressID, o.PaymentID, o.TotalAmount, o.OrderedOn,
		)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		// Wholesale overwrite: the incoming item set replaces the stored one.
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, o.ID); err != nil {
			return fmt.Errorf("clear order_items: %w", err)
		}
	}

	for i := range o.Items {
		it := &o.Items[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, review_status, order_status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			o.ID, it.ProductID, it.Quantity, it.ReviewStatus, it.OrderStatus,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*Order, error) {
	var o Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, buyer_id, shipping_address_id, billing_address_id, payment_id, total_amount, ordered_on
		FROM orders WHERE id=$1`,
		id,
	).Scan(&o.ID, &o.BuyerID, &o.ShippingAddressID, &o.BillingAddressID, &o.PaymentID, &o.TotalAmount, &o.OrderedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, buyer_id, shipping_address_id, billing_address_id, payment_id, total_amount, ordered_on
		FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.ShippingAddressID, &o.BillingAddressID, &o.PaymentID, &o.TotalAmount, &o.OrderedOn); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *PostgresRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists order: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int) error {
	// Items go with the order via ON DELETE CASCADE.
	if _, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderID int) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, quantity, review_status, order_status
		FROM order_items WHERE order_id=$1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order_items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Quantity, &it.ReviewStatus, &it.OrderStatus); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return items, nil
}
