package ps

import (
	"testing"

	"github.com/nickyhof/PlutoQuery/core"
)

func TestBatchCommitsOnce(t *testing.T) {
	persistence, err := NewMemoryPersistence()
	if err != nil {
		t.Fatalf("Failed to create persistence: %v", err)
	}

	batch, err := persistence.BeginBatch()
	if err != nil {
		t.Fatalf("Failed to begin batch: %v", err)
	}

	batch.Put("testdb", "authors", core.RecordKey(1), []byte(`{"id":1}`))
	batch.Put("testdb", "courses", core.RecordKey(1), []byte(`{"id":1}`))
	batch.Put("testdb", "courses", core.RecordKey(2), []byte(`{"id":2}`))

	if batch.Len() != 3 {
		t.Errorf("Expected 3 queued writes, got %d", batch.Len())
	}

	txn, err := batch.Commit(testIdentity, "Seeding")
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	if txn.Id == "" {
		t.Error("Expected transaction ID to be set")
	}
	if batch.Len() != 0 {
		t.Error("Expected batch to be empty after commit")
	}

	history, _ := persistence.History(0)
	if len(history) != 1 {
		t.Errorf("Expected a single commit, got %d", len(history))
	}

	if keys := persistence.ListRecordKeys("testdb", "courses"); len(keys) != 2 {
		t.Errorf("Expected 2 course keys, got %v", keys)
	}
}

func TestBatchLaterWriteWins(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	batch, _ := persistence.BeginBatch()
	batch.Put("testdb", "tags", core.RecordKey(1), []byte(`old`))
	batch.Put("testdb", "tags", core.RecordKey(1), []byte(`new`))
	if _, err := batch.Commit(testIdentity, "Overwrite"); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	data, _ := persistence.GetRecord("testdb", "tags", core.RecordKey(1))
	if string(data) != "new" {
		t.Errorf("Expected later write to win, got %s", data)
	}
}

func TestBatchEmptyCommit(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	batch, _ := persistence.BeginBatch()
	if _, err := batch.Commit(testIdentity, "Nothing"); err != ErrEmptyBatch {
		t.Errorf("Expected ErrEmptyBatch, got %v", err)
	}
}

func TestBatchDelete(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	batch, _ := persistence.BeginBatch()
	batch.Put("testdb", "courses", core.RecordKey(1), []byte(`{"id":1}`))
	batch.Put("testdb", "courses", core.RecordKey(2), []byte(`{"id":2}`))
	batch.Put("testdb", "tags", core.RecordKey(1), []byte(`{"id":1}`))
	if _, err := batch.Commit(testIdentity, "Seeding"); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	batch, _ = persistence.BeginBatch()
	batch.Delete("testdb", "courses", core.RecordKey(2))
	batch.Delete("testdb", "tags", core.RecordKey(1))
	batch.Delete("testdb", "authors", core.RecordKey(9))
	batch.Put("testdb", "courses", core.RecordKey(3), []byte(`{"id":3}`))
	if batch.Len() != 4 {
		t.Errorf("Expected 4 queued changes, got %d", batch.Len())
	}
	if _, err := batch.Commit(testIdentity, "Pruning"); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	keys := persistence.ListRecordKeys("testdb", "courses")
	if len(keys) != 2 || keys[0] != core.RecordKey(1) || keys[1] != core.RecordKey(3) {
		t.Errorf("Expected courses 1 and 3, got %v", keys)
	}
	if keys := persistence.ListRecordKeys("testdb", "tags"); len(keys) != 0 {
		t.Errorf("Expected no tags left, got %v", keys)
	}

	history, _ := persistence.History(0)
	if len(history) != 2 {
		t.Errorf("Expected 2 commits, got %d", len(history))
	}
}

func TestBatchDeleteThenPut(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	batch, _ := persistence.BeginBatch()
	batch.Delete("testdb", "tags", core.RecordKey(1))
	batch.Put("testdb", "tags", core.RecordKey(1), []byte(`kept`))
	if _, err := batch.Commit(testIdentity, "Replace"); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	if data, exists := persistence.GetRecord("testdb", "tags", core.RecordKey(1)); !exists || string(data) != "kept" {
		t.Errorf("Expected later put to win, got %s (exists=%v)", data, exists)
	}
}
