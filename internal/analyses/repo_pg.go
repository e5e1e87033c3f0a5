package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"playlist-backend/internal/modelout"
)

// PGRepo implements Repo using Postgres. Video titles and recommendations
// are stored as jsonb to keep the persisted document shape intact.
type PGRepo struct {
	DB *sql.DB
}

// Insert appends a new analysis record.
func (r *PGRepo) Insert(ctx context.Context, record Record) error {
	const query = `
INSERT INTO analyses (id, user_name, playlist_url, syllabus, video_titles, recommendations, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	titlesPayload, err := json.Marshal(record.VideoTitles)
	if err != nil {
		return fmt.Errorf("marshal video titles: %w", err)
	}
	recsPayload, err := json.Marshal(record.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.User,
		record.PlaylistURL,
		record.Syllabus,
		titlesPayload,
		recsPayload,
		record.CreatedAt,
	)
	return err
}

// GetByID returns a record by ID.
func (r *PGRepo) GetByID(ctx context.Context, recordID string) (Record, error) {
	const query = `
SELECT id, user_name, playlist_url, syllabus, video_titles, recommendations, created_at
FROM analyses
WHERE id = $1
LIMIT 1`
	return scanRecord(r.DB.QueryRowContext(ctx, query, recordID))
}

// ListByUser returns records for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, user string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_name, playlist_url, syllabus, video_titles, recommendations, created_at
FROM analyses
WHERE user_name = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, user, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var record Record
	var titlesPayload []byte
	var recsPayload []byte
	err := row.Scan(
		&record.ID,
		&record.User,
		&record.PlaylistURL,
		&record.Syllabus,
		&titlesPayload,
		&recsPayload,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if len(titlesPayload) > 0 {
		if err := json.Unmarshal(titlesPayload, &record.VideoTitles); err != nil {
			return Record{}, fmt.Errorf("unmarshal video titles: %w", err)
		}
	}
	if len(recsPayload) > 0 {
		var recs []modelout.Recommendation
		if err := json.Unmarshal(recsPayload, &recs); err != nil {
			return Record{}, fmt.Errorf("unmarshal recommendations: %w", err)
		}
		record.Recommendations = recs
	}
	return record, nil
}

var _ Repo = (*PGRepo)(nil)
