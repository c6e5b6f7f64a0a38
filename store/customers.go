package store

import (
	"context"
	"fmt"

	"github.com/hanksha/venue-booking-backend/model"
)

// UpsertByEmail is the local customer directory: one row per normalized email.
func (s *Store) UpsertByEmail(ctx context.Context, customer model.Customer) (string, error) {
	sql := `
		INSERT INTO venue.customer (email, name, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			phone = CASE WHEN EXCLUDED.phone = '' THEN venue.customer.phone ELSE EXCLUDED.phone END,
			updated_at = now()
		RETURNING id::text;
	`

	var id string
	err := s.pool.QueryRow(ctx, sql, model.NormalizeEmail(customer.Email), customer.Name, customer.Phone).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to upsert customer: %w", err)
	}

	return id, nil
}
