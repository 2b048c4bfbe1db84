// Package core provides the record types shared by every PlutoQuery package.
//
// The package defines Course, Author and Tag, the Dataset that groups them,
// and the Identity and Table descriptors used by the record store.
//
// # Records
//
// A Course belongs to exactly one Author through AuthorID. The author is not
// embedded in the course; callers resolve it through a lookup (see
// db.Context.AuthorOf) so that authors and courses never reference each other.
//
//	course := core.Course{
//	    ID:        1,
//	    Name:      "C# Basics for Beginners",
//	    Level:     1,
//	    FullPrice: 49,
//	    AuthorID:  1,
//	    Tags:      []core.Tag{{ID: 1, Name: "c#"}},
//	}
//
// # Integrity
//
// Dataset.Validate checks that IDs are unique within each collection and
// that every foreign key resolves:
//
//	if err := dataset.Validate(); err != nil {
//	    // errors.Is(err, core.ErrDanglingReference), core.ErrDuplicateID, ...
//	}
//
// # Tables
//
// Each collection is stored as a table in the record store:
//
//	core.CoursesTable("pluto") // core.Table{Database: "pluto", Name: "courses", ...}
package core
