// Package op provides typed access to the tables of a PlutoQuery store.
//
// The op package sits between the data context (db/) and the persistence
// layer (ps/).
//
// # DatabaseOp
//
//	dbOp, err := op.GetDatabase("pluto", persistence)
//	tables := dbOp.TableNames()           // sorted table names
//	tableOp, err := dbOp.Table("courses")
//
// # TableOp
//
//	tableOp, err := op.GetTable("pluto", "courses", persistence)
//
//	keys := tableOp.Keys() // sorted record keys
//
//	for key, value := range tableOp.Scan() {
//	    // raw record bytes in key order
//	}
//
// Decode streams typed records straight from the store:
//
//	for course, err := range op.Decode[core.Course](tableOp) {
//	    if err != nil {
//	        return err
//	    }
//	    // use course
//	}
package op
