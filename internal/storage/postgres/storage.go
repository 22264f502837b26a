package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/lunchmicro/lunchsvc/internal/domain/errors"
	"github.com/lunchmicro/lunchsvc/internal/domain/model"
)

// Pool is the subset of pgxpool.Pool the storage uses. Tests substitute
// a pgxmock pool through it.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage implements the order repository backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lunch_orders (
            id UUID PRIMARY KEY,
            parent_id UUID NOT NULL,
            child_id UUID NOT NULL,
            meal TEXT NOT NULL,
            quantity INT NOT NULL,
            order_day TEXT NOT NULL,
            unit_price NUMERIC(10,2) NOT NULL,
            total NUMERIC(10,2) NOT NULL,
            status TEXT NOT NULL,
            created_on TIMESTAMPTZ NOT NULL,
            updated_on TIMESTAMPTZ NOT NULL,
            completed_on TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_lunch_orders_child_day ON lunch_orders(child_id, order_day)`,
		`CREATE INDEX IF NOT EXISTS idx_lunch_orders_parent ON lunch_orders(parent_id, created_on DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, parent_id, child_id, meal, quantity, order_day, unit_price, total, status, created_on, updated_on, completed_on`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID, &o.ParentID, &o.ChildID, &o.Meal, &o.Quantity, &o.OrderDay,
		&o.UnitPrice, &o.Total, &o.Status, &o.CreatedOn, &o.UpdatedOn, &o.CompletedOn,
	)
}

func (s *Storage) collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create persists a freshly validated order and returns the stored snapshot.
func (s *Storage) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO lunch_orders
                   (id, parent_id, child_id, meal, quantity, order_day, unit_price, total, status, created_on, updated_on)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := s.pool.Exec(ctx, query,
		order.ID, order.ParentID, order.ChildID, order.Meal, order.Quantity,
		order.OrderDay, order.UnitPrice, order.Total, order.Status,
		order.CreatedOn, order.UpdatedOn,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

// GetByID loads a single order. The read always hits the database, so a
// caller re-evaluating an order right before a write sees the latest
// committed state.
func (s *Storage) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM lunch_orders WHERE id=$1`
	var o model.Order
	if err := scanOrder(s.pool.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// ExistsActiveForDay reports whether the child already holds a
// non-cancelled order for the given weekday.
func (s *Storage) ExistsActiveForDay(ctx context.Context, childID uuid.UUID, orderDay string) (bool, error) {
	const query = `SELECT EXISTS (
                       SELECT 1 FROM lunch_orders
                       WHERE child_id=$1 AND order_day=$2 AND status <> $3
                   )`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, childID, orderDay, model.OrderStatusCancelled).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListAll returns every order. Used only by the sweep's full scan.
func (s *Storage) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM lunch_orders ORDER BY created_on`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

// ListRelevantByChild returns the child's orders, excluding cancelled
// ones and completed ones finished at or before the cutoff.
func (s *Storage) ListRelevantByChild(ctx context.Context, childID uuid.UUID, completedAfter time.Time) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM lunch_orders
              WHERE child_id=$1 AND status <> $2
                AND (status <> $3 OR completed_on IS NULL OR completed_on > $4)
              ORDER BY created_on DESC`
	rows, err := s.pool.Query(ctx, query, childID, model.OrderStatusCancelled, model.OrderStatusCompleted, completedAfter)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

// ListRelevantByParent applies the child filter across all of the
// parent's orders.
func (s *Storage) ListRelevantByParent(ctx context.Context, parentID uuid.UUID, completedAfter time.Time) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM lunch_orders
              WHERE parent_id=$1 AND status <> $2
                AND (status <> $3 OR completed_on IS NULL OR completed_on > $4)
              ORDER BY created_on DESC`
	rows, err := s.pool.Query(ctx, query, parentID, model.OrderStatusCancelled, model.OrderStatusCompleted, completedAfter)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

// ListByParentAndStatus returns the parent's orders in one status.
func (s *Storage) ListByParentAndStatus(ctx context.Context, parentID uuid.UUID, status model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM lunch_orders
              WHERE parent_id=$1 AND status=$2 ORDER BY created_on DESC`
	rows, err := s.pool.Query(ctx, query, parentID, status)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

// UpdateStatus moves an order into a new status and refreshes
// updated_on. completed_on is written only when provided, so a
// cancellation leaves it untouched. The single UPDATE keeps the
// read-modify-write of one record atomic; racing writers that aim for
// the same terminal state therefore stay consistent.
func (s *Storage) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus, completedOn *time.Time) error {
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `UPDATE lunch_orders
                       SET status=$1, completed_on=COALESCE($2, completed_on), updated_on=NOW()
                       WHERE id=$3`
		tag, err := tx.Exec(ctx, query, status, completedOn, orderID)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
