package PlutoQuery

import (
	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/db"
	"github.com/nickyhof/PlutoQuery/ps"
)

type Instance struct {
	Persistence *ps.Persistence
}

func Open(persistence *ps.Persistence) *Instance {
	return &Instance{
		Persistence: persistence,
	}
}

// Seed writes dataset to the default database.
func (instance *Instance) Seed(dataset core.Dataset, identity core.Identity) (db.CommitResult, error) {
	return db.Seed(instance.Persistence, dataset, identity, db.DefaultDatabase)
}

func (instance *Instance) Context(identity core.Identity, opts ...db.Option) (*db.Context, error) {
	return db.NewContext(instance.Persistence, identity, opts...)
}
