// Package PlutoQuery demonstrates composable queries over a course catalog.
//
// Courses, authors and tags are seeded into a Git-backed record store and
// loaded into a read-only data context. The catalog package then runs a fixed
// sequence of queries against it: filtering, ordering, projection,
// flattening, grouping, joins, partitioning, element operators, quantifiers
// and aggregates.
//
// # Quick Start
//
//	persistence, _ := ps.NewMemoryPersistence()
//	instance := PlutoQuery.Open(&persistence)
//	identity := core.Identity{Name: "App", Email: "app@example.com"}
//
//	dataset, _ := fixture.Load()
//	instance.Seed(dataset, identity)
//
//	ctx, _ := instance.Context(identity)
//	names, _ := query.Select(
//	    ctx.Courses().Where(func(c core.Course) bool { return c.Level == 1 }),
//	    func(c core.Course) string { return c.Name },
//	).ToSlice()
//
// # Packages
//
//   - query: the lazy query pipeline
//   - expr: CEL expressions as query filters
//   - db: the data context, seeding and result rendering
//   - catalog: the demonstration queries and their runner
//   - fixture: the built-in dataset
//   - ps, op: the record store and typed table access
package PlutoQuery
