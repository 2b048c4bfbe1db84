// Package catalog holds the demonstration queries PlutoQuery runs.
//
// Each query is a named Entry. The query pipelines behind the entries are
// exported as builders so they can be evaluated on their own:
//
//	names, err := query.Select(
//	    catalog.CoursesByAuthor(ctx, 1),
//	    func(c core.Course) string { return c.Name },
//	).ToSlice()
//
// # Runner
//
// A Runner executes every entry once, in catalog order, and prints each
// entry's heading and output:
//
//	runner := catalog.NewRunner(ctx, console.New(os.Stdout), logger)
//	if err := runner.Run(); err != nil {
//	    logger.Fatal().Err(err).Msg("catalog failed")
//	}
//
// The first failing entry stops the run. Its error is wrapped with the entry
// name.
package catalog
