package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/punch"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// GetRange implements punch.PunchRepository. Timestamps are stored as the
// device reported them, so the range comparison is plain text ordering;
// bare-date bounds sort before any same-day timestamp, which makes
// [start, end) cover the whole period for every format the devices emit.
func (p *punchRepositoryImpl) GetRange(ctx context.Context, start, end string) ([]punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, device_ip, pin, timestamp, batch_id, created_at
		FROM punches
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp ASC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, start, end, punch.MaxBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var row punch.Punch
		err := rows.Scan(&row.ID, &row.DeviceIP, &row.PIN, &row.Timestamp, &row.BatchID, &row.CreatedAt)
		if err != nil {
			return nil, err
		}
		punches = append(punches, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

// CreateBatch implements punch.PunchRepository. The log is append-only; an
// import either lands whole or not at all.
func (p *punchRepositoryImpl) CreateBatch(ctx context.Context, punches []punch.Punch) (int, error) {
	if len(punches) == 0 {
		return 0, punch.ErrEmptyBatch
	}

	inserted := 0
	err := WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO punches (device_ip, pin, timestamp, batch_id)
			VALUES ($1, $2, $3, $4)
		`
		for _, row := range punches {
			if _, err := tx.Exec(ctx, query, row.DeviceIP, row.PIN, row.Timestamp, row.BatchID); err != nil {
				return fmt.Errorf("failed to insert punch for pin %s: %w", row.PIN, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
