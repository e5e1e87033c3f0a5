package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"playlist-backend/internal/modelout"
)

func testRecord(id, user string, createdAt time.Time) Record {
	return Record{
		ID:          id,
		User:        user,
		PlaylistURL: "https://youtube.com/playlist?list=PL1",
		Syllabus:    "1. Binary Trees",
		VideoTitles: []string{"Intro to BST"},
		Recommendations: []modelout.Recommendation{
			{Topic: "Binary Trees", Videos: []string{"Intro to BST"}},
		},
		CreatedAt: createdAt,
	}
}

func TestMemoryRepoInsertAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	record := testRecord("r1", "alice", time.Now().UTC())

	if err := repo.Insert(ctx, record); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.User != "alice" || got.PlaylistURL != record.PlaylistURL {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListByUserNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"r1", "r2", "r3"} {
		record := testRecord(id, "alice", base.Add(time.Duration(i)*time.Minute))
		if err := repo.Insert(ctx, record); err != nil {
			t.Fatalf("Insert %s: %v", id, err)
		}
	}
	if err := repo.Insert(ctx, testRecord("other", "bob", base)); err != nil {
		t.Fatalf("Insert other: %v", err)
	}

	records, err := repo.ListByUser(ctx, "alice", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "r3" || records[2].ID != "r1" {
		t.Fatalf("not newest first: %s, %s, %s", records[0].ID, records[1].ID, records[2].ID)
	}
}

func TestMemoryRepoListByUserPagination(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		record := testRecord(string(rune('a'+i)), "alice", base.Add(time.Duration(i)*time.Minute))
		if err := repo.Insert(ctx, record); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	page, err := repo.ListByUser(ctx, "alice", 2, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 records, got %d", len(page))
	}
	if page[0].ID != "d" || page[1].ID != "c" {
		t.Fatalf("unexpected page: %s, %s", page[0].ID, page[1].ID)
	}

	empty, err := repo.ListByUser(ctx, "alice", 10, 50)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d records", len(empty))
	}
}
