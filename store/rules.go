package store

import (
	"context"
	"fmt"

	"github.com/hanksha/venue-booking-backend/model"
	"github.com/jackc/pgx/v5"
)

const blackoutColumns = `id::text, to_char(date, 'YYYY-MM-DD'), start_minute, end_minute, scope, reason`

func scanBlackouts(rows pgx.Rows) ([]model.BlackoutRule, error) {
	defer rows.Close()

	rules := []model.BlackoutRule{}

	for rows.Next() {
		var rule model.BlackoutRule
		var scope string

		err := rows.Scan(&rule.ID, &rule.Date, &rule.StartMinute, &rule.EndMinute, &scope, &rule.Reason)

		if err != nil {
			return nil, fmt.Errorf("error scanning blackout row: %w", err)
		}

		rule.Scope = model.Scope(scope)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blackout rows: %w", err)
	}

	return rules, nil
}

// ListBlackouts returns the rules of dateKey scoped to activity or to ALL.
func (s *Store) ListBlackouts(ctx context.Context, dateKey string, activity model.Activity) ([]model.BlackoutRule, error) {
	sql := `
		SELECT ` + blackoutColumns + `
		FROM venue.blackout_rule
		WHERE date = $1::date AND scope IN ($2, 'ALL')
		ORDER BY start_minute NULLS FIRST;
	`

	rows, err := s.pool.Query(ctx, sql, dateKey, string(activity))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch blackouts for %v: %w", dateKey, err)
	}

	return scanBlackouts(rows)
}

// ListBlackoutsByDate returns every rule of dateKey regardless of scope.
func (s *Store) ListBlackoutsByDate(ctx context.Context, dateKey string) ([]model.BlackoutRule, error) {
	sql := `
		SELECT ` + blackoutColumns + `
		FROM venue.blackout_rule
		WHERE date = $1::date
		ORDER BY start_minute NULLS FIRST, scope;
	`

	rows, err := s.pool.Query(ctx, sql, dateKey)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch blackouts for %v: %w", dateKey, err)
	}

	return scanBlackouts(rows)
}

func (s *Store) InsertBlackout(ctx context.Context, rule model.BlackoutRule) (model.BlackoutRule, error) {
	sql := `
		INSERT INTO venue.blackout_rule (id, date, start_minute, end_minute, scope, reason)
		VALUES ($1, $2::date, $3, $4, $5, $6);
	`

	_, err := s.pool.Exec(ctx, sql, rule.ID, rule.Date, rule.StartMinute, rule.EndMinute, string(rule.Scope), rule.Reason)

	if err != nil {
		return model.BlackoutRule{}, fmt.Errorf("failed to insert blackout: %w", err)
	}

	return rule, nil
}

func (s *Store) DeleteBlackout(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM venue.blackout_rule WHERE id = $1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete blackout '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

const bufferColumns = `id::text, scope, before_minutes, after_minutes, active`

func scanBuffers(rows pgx.Rows) ([]model.BufferRule, error) {
	defer rows.Close()

	rules := []model.BufferRule{}

	for rows.Next() {
		var rule model.BufferRule
		var scope string

		err := rows.Scan(&rule.ID, &scope, &rule.BeforeMinutes, &rule.AfterMinutes, &rule.Active)

		if err != nil {
			return nil, fmt.Errorf("error scanning buffer row: %w", err)
		}

		rule.Scope = model.Scope(scope)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buffer rows: %w", err)
	}

	return rules, nil
}

// ListBufferRules returns the active rules scoped to activity or to ALL.
func (s *Store) ListBufferRules(ctx context.Context, activity model.Activity) ([]model.BufferRule, error) {
	sql := `
		SELECT ` + bufferColumns + `
		FROM venue.buffer_rule
		WHERE active AND scope IN ($1, 'ALL');
	`

	rows, err := s.pool.Query(ctx, sql, string(activity))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch buffer rules: %w", err)
	}

	return scanBuffers(rows)
}

func (s *Store) ListAllBufferRules(ctx context.Context) ([]model.BufferRule, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+bufferColumns+` FROM venue.buffer_rule ORDER BY scope;`)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch buffer rules: %w", err)
	}

	return scanBuffers(rows)
}

func (s *Store) InsertBufferRule(ctx context.Context, rule model.BufferRule) (model.BufferRule, error) {
	sql := `
		INSERT INTO venue.buffer_rule (id, scope, before_minutes, after_minutes, active)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := s.pool.Exec(ctx, sql, rule.ID, string(rule.Scope), rule.BeforeMinutes, rule.AfterMinutes, rule.Active)

	if err != nil {
		return model.BufferRule{}, fmt.Errorf("failed to insert buffer rule: %w", err)
	}

	return rule, nil
}
