// Package query provides lazy, composable queries over in-memory and
// store-backed sequences.
//
// A query is built by chaining operators on a Seq and runs only when a
// terminal operation evaluates it:
//
//	courses := query.From(dataset.Courses)
//
//	names, err := query.Select(
//	    courses.
//	        Where(func(c core.Course) bool { return c.AuthorID == 1 }).
//	        OrderBy(query.Desc(func(c core.Course) int { return c.Level })).
//	        ThenBy(query.Asc(func(c core.Course) string { return c.Name })).Seq,
//	    func(c core.Course) string { return c.Name },
//	).ToSlice()
//
// Operators that change the element type (Select, SelectMany, GroupBy, Join,
// GroupJoin, CrossJoin, Distinct) are package functions; the others are
// methods.
//
// # Evaluation
//
// Every terminal operation re-runs the pipeline. Sequences built with From
// can be evaluated any number of times. Errors flow with the elements and
// are returned by the terminal operation:
//
//	for course, err := range seq.Iter() {
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Element operators
//
// First, Last and Single fail with ErrNotFound when nothing matches; their
// OrDefault forms return false instead. Single fails with ErrMoreThanOne on a
// second match. Last needs a sequence that can be read in reverse, which only
// in-memory sources are. Store scans fail with ErrReverseUnsupported; order
// descending and take First instead.
//
// # Aggregates
//
// Count and Sum never fail on an empty sequence. Max, Min and Average fail
// with ErrEmptySequence.
package query
