package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads exercise records from an exercises table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a Postgres-backed catalog source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Name implements Source.
func (s *PostgresSource) Name() string {
	return "postgres"
}

// Fetch implements Source.
func (s *PostgresSource) Fetch(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT workout_id, name, category, equipment, level, rating
		FROM exercises
		ORDER BY workout_id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec    Record
			rating *float64
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.BodyPart, &rec.Equipment, &rec.Level, &rating); err != nil {
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}
		rec.Rating = rating
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading exercise rows: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
