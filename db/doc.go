// Package db provides the data context the PlutoQuery catalog runs against.
//
// Seed writes a dataset to the record store in a single commit. NewContext
// then loads an immutable snapshot of it.
//
// # Seeding
//
//	result, err := db.Seed(&persistence, dataset, identity, db.DefaultDatabase)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Display(out) // 3 table(s) created, 39 record(s) written at 1a2b3c4d (<1ms)
//
// # Context Usage
//
//	ctx, err := db.NewContext(&persistence, identity,
//	    db.WithLogger(logger),
//	)
//
//	// In-memory sequences, readable in both directions
//	level1 := ctx.Courses().Where(func(c core.Course) bool { return c.Level == 1 })
//
//	// The same filter written as an expression
//	level1 = ctx.CoursesWhere(`course.level == 1`)
//
//	// Navigation from a course to its author
//	author, err := ctx.AuthorOf(course)
//
// ScanCourses reads the courses from the store lazily. It is forward-only:
// Last and LastOrDefault fail with query.ErrReverseUnsupported.
//
// # Result Types
//
// There are two result types:
//   - QueryResult: rows produced by Tabulate
//   - CommitResult: returned by Seed
//
// Both render through a console.Console with Display.
package db
