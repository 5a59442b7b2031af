package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Query narrows a list lookup. Zero values mean unbounded.
type Query struct {
	From  time.Time // include rows with date >= From
	Limit int
}

type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

func (k Kind) table() string {
	if k == KindExpense {
		return "expenses"
	}
	return "incomes"
}

func (k Kind) labelColumn() string {
	if k == KindExpense {
		return "category"
	}
	return "source"
}

func (s *Store) Insert(ctx context.Context, e *Entry) (Entry, error) {
	q := fmt.Sprintf(`
		INSERT INTO %s (user_id, icon, %s, amount, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		e.Kind.table(), e.Kind.labelColumn(),
	)

	stored := *e
	err := s.Pool.QueryRow(ctx, q,
		e.UserID,
		e.Icon,
		e.Label,
		e.Amount,
		e.Date,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return Entry{}, err
	}
	return stored, nil
}

// ListByOwnerAndKind returns the owner's entries of one kind, most recent
// first. Ties on date break on id so repeated calls against unchanged data
// return the same order.
func (s *Store) ListByOwnerAndKind(ctx context.Context, ownerID string, kind Kind, q Query) ([]Entry, error) {
	sql := fmt.Sprintf(`
		SELECT id, user_id, icon, %s, amount, date, created_at, updated_at
		FROM %s
		WHERE user_id = $1`,
		kind.labelColumn(), kind.table(),
	)

	args := []any{ownerID}
	if !q.From.IsZero() {
		args = append(args, q.From)
		sql += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	sql += " ORDER BY date DESC, id DESC"
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e := Entry{Kind: kind}
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Icon,
			&e.Label,
			&e.Amount,
			&e.Date,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SumByOwnerAndKind pushes the fold into the store. An owner with no rows
// sums to zero, not an error.
func (s *Store) SumByOwnerAndKind(ctx context.Context, ownerID string, kind Kind) (int64, error) {
	sql := fmt.Sprintf(
		`SELECT COALESCE(SUM(amount), 0)::bigint FROM %s WHERE user_id = $1`,
		kind.table(),
	)

	var total int64
	if err := s.Pool.QueryRow(ctx, sql, ownerID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) DeleteByID(ctx context.Context, ownerID, id string, kind Kind) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, kind.table())
	ct, err := s.Pool.Exec(ctx, sql, id, ownerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
