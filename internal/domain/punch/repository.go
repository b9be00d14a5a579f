package punch

import "context"

// MaxBatchSize caps a single range query. Callers needing more must page;
// in practice one facility-month stays well under this.
const MaxBatchSize = 10000

// PunchRepository defines access to the append-only punch log.
type PunchRepository interface {
	// GetRange retrieves punches whose timestamp falls in the half-open
	// lexical range [start, end), ascending, capped at MaxBatchSize rows.
	GetRange(ctx context.Context, start, end string) ([]Punch, error)

	// CreateBatch appends imported punches to the log.
	CreateBatch(ctx context.Context, punches []Punch) (int, error)
}
