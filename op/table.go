package op

import (
	"fmt"
	"iter"

	jsoniter "github.com/json-iterator/go"

	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/ps"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type TableOp struct {
	Table       core.Table
	Persistence *ps.Persistence
}

func GetTable(database string, tableName string, persistence *ps.Persistence) (*TableOp, error) {
	table, err := persistence.GetTable(database, tableName)

	if err != nil {
		return nil, err
	}

	return &TableOp{
		Table:       *table,
		Persistence: persistence,
	}, nil
}

// Keys returns the record keys of the table in ascending order.
func (op *TableOp) Keys() []string {
	return op.Persistence.ListRecordKeys(op.Table.Database, op.Table.Name)
}

func (op *TableOp) Scan() iter.Seq2[string, []byte] {
	return op.Persistence.Scan(op.Table.Database, op.Table.Name, nil)
}

// Decode lazily decodes every record of the table in key order. A record
// that fails to decode is yielded with its error.
func Decode[T any](op *TableOp) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for key, value := range op.Scan() {
			var record T
			if err := json.Unmarshal(value, &record); err != nil {
				if !yield(record, fmt.Errorf("%s.%s record %s: %w", op.Table.Database, op.Table.Name, key, err)) {
					return
				}
				continue
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// Encode serializes a record for storage.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}
