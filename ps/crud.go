package ps

import (
	"fmt"
	"iter"
	"path"
	"sort"
	"strings"

	"github.com/nickyhof/PlutoQuery/core"
)

const tableSuffix = ".table"

func tablePath(database, table string) string {
	return fmt.Sprintf("%s/%s%s", database, table, tableSuffix)
}

// PutTable queues the table descriptor in batch.
func (b *Batch) PutTable(table core.Table) error {
	dataBytes, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}

	b.PutFile(tablePath(table.Database, table.Name), dataBytes)
	return nil
}

func (persistence *Persistence) GetTable(database string, table string) (t *core.Table, err error) {
	data, err := persistence.ReadFileDirect(tablePath(database, table))
	if err != nil {
		return nil, fmt.Errorf("table %s.%s does not exist: %w", database, table, err)
	}

	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table: %w", err)
	}

	return t, nil
}

func (persistence *Persistence) ListTables(database string) []string {
	entries, err := persistence.ListEntriesDirect(database)
	if err != nil {
		return nil
	}

	var tables []string
	for _, entry := range entries {
		if !entry.IsDir && strings.HasSuffix(entry.Name, tableSuffix) {
			tables = append(tables, strings.TrimSuffix(entry.Name, tableSuffix))
		}
	}

	return tables
}

func (persistence *Persistence) GetRecord(database string, table string, key string) (data []byte, exists bool) {
	data, err := persistence.ReadFileDirect(path.Join(database, table, key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListRecordKeys returns the record keys of a table in ascending order.
func (persistence *Persistence) ListRecordKeys(database string, table string) []string {
	entries, err := persistence.ListEntriesDirect(path.Join(database, table))
	if err != nil {
		return nil
	}

	var keys []string
	for _, entry := range entries {
		if !entry.IsDir {
			keys = append(keys, entry.Name)
		}
	}
	sort.Strings(keys)

	return keys
}

// Scan lazily reads the records of a table in key order. The key list is
// taken when iteration starts; each record is read as it is yielded.
func (persistence *Persistence) Scan(database string, table string, filterExpr func(key string, value []byte) bool) iter.Seq2[string, []byte] {
	return func(yield func(key string, value []byte) bool) {
		for _, key := range persistence.ListRecordKeys(database, table) {
			value, exists := persistence.GetRecord(database, table, key)
			if !exists {
				continue
			}

			if filterExpr != nil && !filterExpr(key, value) {
				continue
			}

			if !yield(key, value) {
				return
			}
		}
	}
}
