package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/op"
	"github.com/nickyhof/PlutoQuery/ps"
)

// Seed validates the dataset and writes it to database in a single commit:
// one table descriptor and one record per author, tag and course. Records
// left over from an earlier seed that are not in the dataset are deleted in
// the same commit.
func Seed(persistence *ps.Persistence, dataset core.Dataset, identity core.Identity, database string) (CommitResult, error) {
	start := time.Now()

	if database == "" {
		return CommitResult{}, ErrEmptyDatabaseName
	}
	if err := dataset.Validate(); err != nil {
		return CommitResult{}, fmt.Errorf("invalid dataset: %w", err)
	}

	batch, err := persistence.BeginBatch()
	if err != nil {
		return CommitResult{}, err
	}

	tables := []core.Table{
		core.AuthorsTable(database),
		core.TagsTable(database),
		core.CoursesTable(database),
	}
	for _, table := range tables {
		if err := batch.PutTable(table); err != nil {
			return CommitResult{}, err
		}
	}

	written := 0
	keep := make(map[string]map[string]bool, len(tables))
	put := func(table string, id int, record any) error {
		data, err := op.Encode(record)
		if err != nil {
			return fmt.Errorf("failed to encode %s record %d: %w", table, id, err)
		}
		key := core.RecordKey(id)
		if keep[table] == nil {
			keep[table] = make(map[string]bool)
		}
		keep[table][key] = true
		batch.Put(database, table, key, data)
		written++
		return nil
	}

	for _, author := range dataset.Authors {
		if err := put(core.AuthorsTableName, author.ID, author); err != nil {
			return CommitResult{}, err
		}
	}
	for _, tag := range dataset.Tags {
		if err := put(core.TagsTableName, tag.ID, tag); err != nil {
			return CommitResult{}, err
		}
	}
	for _, course := range dataset.Courses {
		if err := put(core.CoursesTableName, course.ID, course.Record()); err != nil {
			return CommitResult{}, err
		}
	}

	deleted := 0
	for _, table := range tables {
		existing, err := storedKeys(persistence, database, table.Name)
		if err != nil {
			return CommitResult{}, err
		}
		for _, key := range existing {
			if !keep[table.Name][key] {
				batch.Delete(database, table.Name, key)
				deleted++
			}
		}
	}

	ops := batch.Len()
	message := fmt.Sprintf("Seeding %s: %d course(s), %d author(s), %d tag(s)",
		database, len(dataset.Courses), len(dataset.Authors), len(dataset.Tags))
	txn, err := batch.Commit(identity, message)
	if err != nil {
		return CommitResult{}, err
	}

	return CommitResult{
		Transaction:      txn,
		TablesCreated:    len(tables),
		RecordsWritten:   written,
		RecordsDeleted:   deleted,
		ExecutionTimeSec: time.Since(start).Seconds(),
		ExecutionOps:     ops,
	}, nil
}

// storedKeys returns the record keys of a table, or none if the table was
// never seeded.
func storedKeys(persistence *ps.Persistence, database, table string) ([]string, error) {
	tableOp, err := op.GetTable(database, table, persistence)
	if errors.Is(err, ps.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tableOp.Keys(), nil
}
