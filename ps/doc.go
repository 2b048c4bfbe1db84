// Package ps provides the record store that PlutoQuery seeds and reads.
//
// The store is backed by Git through go-git. Every batch of writes becomes a
// single commit, so the snapshot a data context reads is identified by a
// transaction (commit hash).
//
// # Memory Persistence
//
// For tests and the demo program:
//
//	persistence, err := ps.NewMemoryPersistence()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # File Persistence
//
//	persistence, err := ps.NewFilePersistence("/path/to/data")
//
// # Writing
//
// Writes are batched and committed together:
//
//	batch, _ := persistence.BeginBatch()
//	batch.PutTable(core.CoursesTable("pluto"))
//	batch.Put("pluto", "courses", core.RecordKey(1), data)
//	batch.Delete("pluto", "courses", core.RecordKey(2))
//	txn, err := batch.Commit(identity, "Seeding courses")
//
// # Reading
//
// Scan yields the records of a table lazily, in key order:
//
//	for key, value := range persistence.Scan("pluto", "courses", nil) {
//	    // decode value
//	}
package ps
