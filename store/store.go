package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/venue-booking-backend/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exclusionViolation = "23P01"

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Bootstrap runs the schema script. It is safe to run on every start.
func (s *Store) Bootstrap(ctx context.Context, setupSQL string) error {
	if _, err := s.pool.Exec(ctx, setupSQL); err != nil {
		return fmt.Errorf("failed to initialize tables: %w", err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// translate maps an exclusion constraint violation to model.ErrOverlap and keeps the cause.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
		return fmt.Errorf("%s: %w: %w", op, model.ErrOverlap, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func typeNames(types []model.ResourceType) []string {
	names := make([]string, 0, len(types))

	for _, t := range types {
		names = append(names, string(t))
	}

	return names
}
