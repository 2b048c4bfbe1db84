package catalog

import (
	"errors"
	"strconv"

	"github.com/nickyhof/PlutoQuery/console"
	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/db"
	"github.com/nickyhof/PlutoQuery/query"
)

const (
	demoAuthorID = 1
	demoLevel    = 1
	demoPrice    = 100.0
	demoPage     = 2
	demoPageSize = 10
	searchText   = "c#"
)

var ErrUnknownEntry = errors.New("unknown catalog entry")

// Entry is one named demonstration query.
type Entry struct {
	Name  string
	Title string
	Run   func(ctx *db.Context, out *console.Console) error
}

// Entries returns the catalog in the order it runs.
func Entries() []Entry {
	return []Entry{
		{Name: "syntax-vs-methods", Title: "Expression syntax and method chains", Run: runSyntaxVsMethods},
		{Name: "filter-order", Title: "Filtering and ordering", Run: runFilterOrder},
		{Name: "projection", Title: "Projection", Run: runProjection},
		{Name: "grouping", Title: "Grouping", Run: runGrouping},
		{Name: "group-counts", Title: "Grouping with counts", Run: runGroupCounts},
		{Name: "navigation", Title: "Navigation", Run: runNavigation},
		{Name: "inner-join", Title: "Inner join", Run: runInnerJoin},
		{Name: "group-join", Title: "Group join", Run: runGroupJoin},
		{Name: "cross-join", Title: "Cross join", Run: runCrossJoin},
		{Name: "restriction", Title: "Restriction", Run: runRestriction},
		{Name: "ordering", Title: "Ordering", Run: runOrdering},
		{Name: "select", Title: "Select", Run: runSelect},
		{Name: "select-many", Title: "Select many", Run: runSelectMany},
		{Name: "distinct", Title: "Distinct", Run: runDistinct},
		{Name: "partition", Title: "Partitioning", Run: runPartition},
		{Name: "element", Title: "Element operators", Run: runElement},
		{Name: "quantifiers", Title: "Quantifiers", Run: runQuantifiers},
		{Name: "aggregates", Title: "Aggregates", Run: runAggregates},
	}
}

// Lookup returns the entry with the given name.
func Lookup(name string) (Entry, bool) {
	for _, entry := range Entries() {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

func printNames(out *console.Console, courses query.Seq[core.Course]) error {
	return courses.ForEach(func(c core.Course) error {
		out.Println(c.Name)
		return nil
	})
}

func runSyntaxVsMethods(ctx *db.Context, out *console.Console) error {
	if err := printNames(out, CoursesMatching(ctx, searchText)); err != nil {
		return err
	}
	out.Println()
	return printNames(out, CoursesContaining(ctx, searchText))
}

func runFilterOrder(ctx *db.Context, out *console.Console) error {
	return CoursesByAuthor(ctx, demoAuthorID).ForEach(func(c core.Course) error {
		out.Printf("%d\t%s", c.Level, c.Name)
		return nil
	})
}

func displayCourseAuthors(out *console.Console, rows query.Seq[CourseAuthor]) error {
	result, err := db.Tabulate(rows, []string{"Course", "Author"}, func(r CourseAuthor) []string {
		return []string{r.Course, r.Author}
	})
	if err != nil {
		return err
	}
	result.Display(out)
	return nil
}

func runProjection(ctx *db.Context, out *console.Console) error {
	return displayCourseAuthors(out, CourseNamesByAuthor(ctx, demoAuthorID))
}

func runGrouping(ctx *db.Context, out *console.Console) error {
	return CoursesByLevel(ctx).ForEach(func(g query.Grouping[int, core.Course]) error {
		out.Println("key: " + strconv.Itoa(g.Key()))
		return g.Items().ForEach(func(c core.Course) error {
			out.Println("\t" + c.Name)
			return nil
		})
	})
}

func runGroupCounts(ctx *db.Context, out *console.Console) error {
	return CoursesByLevel(ctx).ForEach(func(g query.Grouping[int, core.Course]) error {
		out.Printf("%d, (%d)", g.Key(), g.Len())
		return nil
	})
}

func runNavigation(ctx *db.Context, out *console.Console) error {
	return displayCourseAuthors(out, CoursesWithAuthors(ctx))
}

func runInnerJoin(ctx *db.Context, out *console.Console) error {
	return displayCourseAuthors(out, CourseAuthorJoin(ctx))
}

func runGroupJoin(ctx *db.Context, out *console.Console) error {
	return AuthorCourseCounts(ctx).ForEach(func(a AuthorCount) error {
		out.Printf("%s (%d)", a.Author, a.Courses)
		return nil
	})
}

func runCrossJoin(ctx *db.Context, out *console.Console) error {
	return AuthorCourseCrossJoin(ctx).ForEach(func(p CourseAuthor) error {
		out.Printf("%s - %s", p.Author, p.Course)
		return nil
	})
}

func runRestriction(ctx *db.Context, out *console.Console) error {
	return printNames(out, CoursesAtLevel(ctx, demoLevel))
}

func runOrdering(ctx *db.Context, out *console.Console) error {
	return printNames(out, CoursesAtLevelOrdered(ctx, demoLevel))
}

func runSelect(ctx *db.Context, out *console.Console) error {
	return CourseNamesAtLevel(ctx, demoLevel).ForEach(func(name string) error {
		out.Println(name)
		return nil
	})
}

func printTags(out *console.Console, tags query.Seq[core.Tag]) error {
	return tags.ForEach(func(t core.Tag) error {
		out.Println(t.Name)
		return nil
	})
}

func runSelectMany(ctx *db.Context, out *console.Console) error {
	return printTags(out, TagsAtLevel(ctx, demoLevel))
}

func runDistinct(ctx *db.Context, out *console.Console) error {
	return printTags(out, DistinctTagsAtLevel(ctx, demoLevel))
}

func runPartition(ctx *db.Context, out *console.Console) error {
	return CoursePage(ctx, demoPage, demoPageSize).ForEach(func(c core.Course) error {
		out.Printf("%d\t%s", c.ID, c.Name)
		return nil
	})
}

func runElement(ctx *db.Context, out *console.Console) error {
	first, err := FirstExpensiveCourse(ctx, demoPrice)
	if err != nil {
		return err
	}
	out.Printf("First (price > %.0f, by level): %s", demoPrice, first.Name)

	if course, found, err := FirstExpensiveCourseOrDefault(ctx, demoPrice); err != nil {
		return err
	} else if found {
		out.Printf("FirstOrDefault (price > %.0f, by level): %s", demoPrice, course.Name)
	}

	last, err := ctx.Courses().Last()
	if err != nil {
		return err
	}
	out.Printf("Last: %s", last.Name)

	if course, found, err := ctx.Courses().LastOrDefault(); err != nil {
		return err
	} else if found {
		out.Printf("LastOrDefault: %s", course.Name)
	}

	if _, err := ctx.ScanCourses().Last(); err != nil {
		if !errors.Is(err, query.ErrReverseUnsupported) {
			return err
		}
		out.Println("Last from store: not supported")
	}
	stored, err := LastStoredCourse(ctx)
	if err != nil {
		return err
	}
	out.Printf("Last from store (descending, first): %s", stored.Name)

	single, err := ctx.Courses().Single(withID(1))
	if err != nil {
		return err
	}
	out.Printf("Single (id 1): %s", single.Name)

	course, found, err := ctx.Courses().SingleOrDefault(withID(2))
	if err != nil {
		return err
	}
	if found {
		out.Printf("SingleOrDefault (id 2): %s", course.Name)
	} else {
		out.Println("SingleOrDefault (id 2): none")
	}
	return nil
}

func runQuantifiers(ctx *db.Context, out *console.Console) error {
	allAbove10, err := ctx.Courses().All(pricedAbove(10))
	if err != nil {
		return err
	}
	out.Printf("All courses above 10: %t", allAbove10)

	anyAtLevel1, err := ctx.Courses().Any(func(c core.Course) bool { return c.Level == demoLevel })
	if err != nil {
		return err
	}
	out.Printf("Any course at level %d: %t", demoLevel, anyAtLevel1)
	return nil
}

func runAggregates(ctx *db.Context, out *console.Console) error {
	price := func(c core.Course) float64 { return c.FullPrice }

	count, err := CoursesAtLevel(ctx, demoLevel).Count()
	if err != nil {
		return err
	}
	maxPrice, err := query.Max(ctx.Courses(), price)
	if err != nil {
		return err
	}
	minPrice, err := query.Min(ctx.Courses(), price)
	if err != nil {
		return err
	}
	average, err := query.Average(ctx.Courses(), price)
	if err != nil {
		return err
	}

	out.Printf("Courses at level %d: %d", demoLevel, count)
	out.Printf("Most expensive: %.2f", maxPrice)
	out.Printf("Least expensive: %.2f", minPrice)
	out.Printf("Average: %.2f", average)
	return nil
}
