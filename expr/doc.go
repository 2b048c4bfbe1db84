// Package expr compiles CEL expressions into query filters.
//
// Each declared variable is a map(string, dyn), so records are bound as plain
// maps:
//
//	engine, err := expr.NewEngine("course")
//	program, err := engine.Compile(`course.level == 1 && course.name.lowerAscii().contains("c#")`)
//
//	matches := expr.Where(courses, program, func(c core.Course) map[string]any {
//	    return map[string]any{"course": c.Fields()}
//	})
//
// Programs are cached by expression text.
package expr
