package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/santiago_crash_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// accidentColumns - порядок колонок таблицы accidents для COPY и SELECT
var accidentColumns = []string{
	"id",
	"row_index",
	"location",
	"latitude",
	"longitude",
	"accidents",
	"fatalities",
	"serious_injuries",
	"moderate_injuries",
	"minor_injuries",
}

type PostgresAccidentSource struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
}

func NewPostgresAccidentSource(db *pgxpool.Pool, logger *logrus.Logger) *PostgresAccidentSource {
	return &PostgresAccidentSource{
		db:     db,
		logger: logger,
	}
}

// LoadAll читает таблицу accidents в порядке строк исходного файла
func (r *PostgresAccidentSource) LoadAll(ctx context.Context) ([]models.AccidentRecord, error) {
	query := `
		SELECT
			id,
			location,
			latitude,
			longitude,
			accidents,
			fatalities,
			serious_injuries,
			moderate_injuries,
			minor_injuries
		FROM accidents
		ORDER BY row_index;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accidents: %w", err)
	}
	defer rows.Close()

	records := []models.AccidentRecord{}
	for rows.Next() {
		var rec models.AccidentRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Location,
			&rec.Latitude,
			&rec.Longitude,
			&rec.AccidentCount,
			&rec.Fatalities,
			&rec.SeriousInjuries,
			&rec.ModerateInjuries,
			&rec.MinorInjuries,
		); err != nil {
			return nil, fmt.Errorf("failed to scan accident row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"repository": "postgres",
		"records":    len(records),
	}).Debug("Accidents loaded from postgres")
	return records, nil
}

// ReplaceAll заменяет содержимое таблицы одним COPY в транзакции.
// Используется только утилитой импорта, дашборд в базу не пишет.
func (r *PostgresAccidentSource) ReplaceAll(ctx context.Context, records []models.AccidentRecord) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE accidents;"); err != nil {
		return 0, fmt.Errorf("failed to truncate accidents: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"accidents"}, accidentColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := &records[i]
			return []any{
				rec.ID,
				i,
				rec.Location,
				rec.Latitude,
				rec.Longitude,
				rec.AccidentCount,
				rec.Fatalities,
				rec.SeriousInjuries,
				rec.ModerateInjuries,
				rec.MinorInjuries,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy accidents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return copied, nil
}
