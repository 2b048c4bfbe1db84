package op

import (
	"fmt"
	"slices"

	"github.com/nickyhof/PlutoQuery/ps"
)

type DatabaseOp struct {
	Name        string
	Persistence *ps.Persistence
}

// GetDatabase returns the database if at least one table descriptor exists
// under name.
func GetDatabase(name string, persistence *ps.Persistence) (*DatabaseOp, error) {
	if !persistence.IsInitialized() {
		return nil, ps.ErrNotInitialized
	}
	if len(persistence.ListTables(name)) == 0 {
		return nil, fmt.Errorf("database %s: %w", name, ps.ErrRecordNotFound)
	}
	return &DatabaseOp{
		Name:        name,
		Persistence: persistence,
	}, nil
}

func (op *DatabaseOp) TableNames() []string {
	names := op.Persistence.ListTables(op.Name)
	slices.Sort(names)
	return names
}

func (op *DatabaseOp) Table(name string) (*TableOp, error) {
	return GetTable(op.Name, name, op.Persistence)
}
