package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/venue-booking-backend/model"
	"github.com/jackc/pgx/v5"
)

const resourceColumns = `id::text, type, active, name, sort_order`

func scanResource(row pgx.Row) (model.Resource, error) {
	var r model.Resource
	var resourceType string

	err := row.Scan(&r.ID, &resourceType, &r.Active, &r.Name, &r.SortOrder)
	r.Type = model.ResourceType(resourceType)

	return r, err
}

func listResources(ctx context.Context, q querier, types []model.ResourceType) ([]model.Resource, error) {
	sql := `
		SELECT ` + resourceColumns + `
		FROM venue.resource
		WHERE cardinality($1::text[]) = 0 OR type = ANY($1)
		ORDER BY type, sort_order, name;
	`

	rows, err := q.Query(ctx, sql, typeNames(types))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}

	defer rows.Close()

	resources := []model.Resource{}

	for rows.Next() {
		r, err := scanResource(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}

		resources = append(resources, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, nil
}

// activeResources is the only place the stored active flag is interpreted.
func activeResources(ctx context.Context, q querier, types []model.ResourceType) ([]model.Resource, error) {
	all, err := listResources(ctx, q, types)

	if err != nil {
		return nil, err
	}

	active := make([]model.Resource, 0, len(all))

	for _, r := range all {
		if r.IsActive() {
			active = append(active, r)
		}
	}

	return active, nil
}

func (s *Store) ListActiveResources(ctx context.Context, types []model.ResourceType) ([]model.Resource, error) {
	return activeResources(ctx, s.pool, types)
}

// ListResources returns every resource of the given types, or all of them when types is empty.
func (s *Store) ListResources(ctx context.Context, types []model.ResourceType) ([]model.Resource, error) {
	return listResources(ctx, s.pool, types)
}

func (s *Store) GetResourceByID(ctx context.Context, id string) (model.Resource, error) {
	sql := `SELECT ` + resourceColumns + ` FROM venue.resource WHERE id = $1;`

	r, err := scanResource(s.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Resource{}, model.ErrNotFound
	}

	if err != nil {
		return model.Resource{}, fmt.Errorf("failed to fetch resource with id %v: %w", id, err)
	}

	return r, nil
}

func (s *Store) InsertResource(ctx context.Context, r model.Resource) (model.Resource, error) {
	sql := `
		INSERT INTO venue.resource (id, type, active, name, sort_order)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := s.pool.Exec(ctx, sql, r.ID, string(r.Type), r.Active, r.Name, r.SortOrder)

	if err != nil {
		return model.Resource{}, fmt.Errorf("failed to insert resource: %w", err)
	}

	return r, nil
}

func (s *Store) SetResourceActive(ctx context.Context, id string, active bool) error {
	tag, err := s.pool.Exec(ctx, `UPDATE venue.resource SET active = $1 WHERE id = $2;`, active, id)

	if err != nil {
		return fmt.Errorf("failed to update resource '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
