package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsertMarshalsJSONPayloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := testRecord("analysis-1", "alice", time.Now().UTC())

	titlesPayload, _ := json.Marshal(record.VideoTitles)
	recsPayload, _ := json.Marshal(record.Recommendations)

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			record.ID,
			record.User,
			record.PlaylistURL,
			record.Syllabus,
			titlesPayload,
			recsPayload,
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), record); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesPayloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_name", "playlist_url", "syllabus", "video_titles", "recommendations", "created_at",
	}).AddRow(
		"analysis-1",
		"alice",
		"https://youtube.com/playlist?list=PL1",
		"1. Binary Trees",
		[]byte(`["Intro to BST"]`),
		[]byte(`[{"topic":"Binary Trees","videos":["Intro to BST"]}]`),
		createdAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("analysis-1").
		WillReturnRows(rows)

	record, err := repo.GetByID(context.Background(), "analysis-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if record.User != "alice" {
		t.Fatalf("unexpected user: %q", record.User)
	}
	if len(record.VideoTitles) != 1 || record.VideoTitles[0] != "Intro to BST" {
		t.Fatalf("unexpected titles: %v", record.VideoTitles)
	}
	if len(record.Recommendations) != 1 || record.Recommendations[0].Topic != "Binary Trees" {
		t.Fatalf("unexpected recommendations: %+v", record.Recommendations)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_name", "playlist_url", "syllabus", "video_titles", "recommendations", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUserAppliesPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_name", "playlist_url", "syllabus", "video_titles", "recommendations", "created_at",
	}).AddRow(
		"analysis-2", "alice", "https://youtube.com/playlist?list=PL2", "1. Graph Algorithms",
		[]byte(`["DFS Explained"]`), []byte(`[]`), createdAt.Add(time.Minute),
	).AddRow(
		"analysis-1", "alice", "https://youtube.com/playlist?list=PL1", "1. Binary Trees",
		[]byte(`["Intro to BST"]`), []byte(`[]`), createdAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("alice", 10, 0).
		WillReturnRows(rows)

	records, err := repo.ListByUser(context.Background(), "alice", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "analysis-2" {
		t.Fatalf("unexpected first record: %q", records[0].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
