package analyses

import "context"

// Repo defines persistence operations for analysis records. Writes are
// append-style; nothing is mutated after insert.
type Repo interface {
	Insert(ctx context.Context, record Record) error
	GetByID(ctx context.Context, recordID string) (Record, error)
	ListByUser(ctx context.Context, user string, limit, offset int) ([]Record, error)
}
