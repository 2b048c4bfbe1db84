package catalog

import (
	"fmt"
	"strings"

	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/db"
	"github.com/nickyhof/PlutoQuery/query"
)

// CourseAuthor pairs a course name with an author name.
type CourseAuthor struct {
	Course string
	Author string
}

// AuthorCount is an author with the number of courses they wrote.
type AuthorCount struct {
	Author  string
	Courses int
}

var (
	byName  = query.Asc(func(c core.Course) string { return c.Name })
	byLevel = query.Asc(func(c core.Course) int { return c.Level })
	byID    = query.Asc(func(c core.Course) int { return c.ID })
)

// CoursesMatching returns the courses whose name contains text, ignoring
// case, ordered by name. The filter is a CEL expression.
func CoursesMatching(ctx *db.Context, text string) query.Seq[core.Course] {
	expression := fmt.Sprintf(`course.name.lowerAscii().contains(%q)`, strings.ToLower(text))
	return ctx.CoursesWhere(expression).OrderBy(byName).Seq
}

// CoursesContaining is CoursesMatching written as a method chain.
func CoursesContaining(ctx *db.Context, text string) query.Seq[core.Course] {
	text = strings.ToLower(text)
	return ctx.Courses().
		Where(func(c core.Course) bool { return strings.Contains(strings.ToLower(c.Name), text) }).
		OrderBy(byName).Seq
}

// CoursesByAuthor returns the courses of an author, highest level first, then
// by name.
func CoursesByAuthor(ctx *db.Context, authorID int) query.Seq[core.Course] {
	return ctx.Courses().
		Where(func(c core.Course) bool { return c.AuthorID == authorID }).
		OrderBy(query.Desc(func(c core.Course) int { return c.Level })).
		ThenBy(byName).Seq
}

// CourseNamesByAuthor projects CoursesByAuthor to course and author names.
func CourseNamesByAuthor(ctx *db.Context, authorID int) query.Seq[CourseAuthor] {
	return query.TrySelect(CoursesByAuthor(ctx, authorID), withAuthor(ctx))
}

// CoursesByLevel groups the courses by level.
func CoursesByLevel(ctx *db.Context) query.Seq[query.Grouping[int, core.Course]] {
	return query.GroupBy(ctx.Courses(), func(c core.Course) int { return c.Level })
}

// CoursesWithAuthors pairs every course with its author by navigating from
// the course.
func CoursesWithAuthors(ctx *db.Context) query.Seq[CourseAuthor] {
	return query.TrySelect(ctx.Courses(), withAuthor(ctx))
}

// CourseAuthorJoin pairs every course with its author through an explicit
// join on the author ID.
func CourseAuthorJoin(ctx *db.Context) query.Seq[CourseAuthor] {
	return query.Join(ctx.Courses(), ctx.Authors(),
		func(c core.Course) int { return c.AuthorID },
		func(a core.Author) int { return a.ID },
		func(c core.Course, a core.Author) CourseAuthor { return CourseAuthor{Course: c.Name, Author: a.Name} },
	)
}

// AuthorCourseCounts returns one row per author with their number of
// courses. Authors without courses count zero.
func AuthorCourseCounts(ctx *db.Context) query.Seq[AuthorCount] {
	return query.GroupJoin(ctx.Authors(), ctx.Courses(),
		func(a core.Author) int { return a.ID },
		func(c core.Course) int { return c.AuthorID },
		func(a core.Author, courses query.Seq[core.Course]) AuthorCount {
			// matches are in memory; Count cannot fail
			n, _ := courses.Count()
			return AuthorCount{Author: a.Name, Courses: n}
		},
	)
}

// AuthorCourseCrossJoin returns every author and course combination.
func AuthorCourseCrossJoin(ctx *db.Context) query.Seq[CourseAuthor] {
	return query.CrossJoin(ctx.Authors(), ctx.Courses(),
		func(a core.Author, c core.Course) CourseAuthor { return CourseAuthor{Course: c.Name, Author: a.Name} },
	)
}

func CoursesAtLevel(ctx *db.Context, level int) query.Seq[core.Course] {
	return ctx.Courses().Where(func(c core.Course) bool { return c.Level == level })
}

// CoursesAtLevelOrdered orders CoursesAtLevel by name, then level.
func CoursesAtLevelOrdered(ctx *db.Context, level int) query.Seq[core.Course] {
	return CoursesAtLevel(ctx, level).OrderBy(byName).ThenBy(byLevel).Seq
}

func CourseNamesAtLevel(ctx *db.Context, level int) query.Seq[string] {
	return query.Select(CoursesAtLevelOrdered(ctx, level), func(c core.Course) string { return c.Name })
}

// TagsAtLevel flattens the tags of CoursesAtLevelOrdered.
func TagsAtLevel(ctx *db.Context, level int) query.Seq[core.Tag] {
	return query.SelectMany(CoursesAtLevelOrdered(ctx, level), func(c core.Course) []core.Tag { return c.Tags })
}

func DistinctTagsAtLevel(ctx *db.Context, level int) query.Seq[core.Tag] {
	return query.Distinct(TagsAtLevel(ctx, level))
}

// CoursePage returns a 1-based page of the courses in ID order.
func CoursePage(ctx *db.Context, page, size int) query.Seq[core.Course] {
	return ctx.Courses().OrderBy(byID).Page(page, size)
}

// FirstExpensiveCourse returns the lowest-level course priced above
// minPrice.
func FirstExpensiveCourse(ctx *db.Context, minPrice float64) (core.Course, error) {
	return ctx.Courses().OrderBy(byLevel).First(pricedAbove(minPrice))
}

func FirstExpensiveCourseOrDefault(ctx *db.Context, minPrice float64) (core.Course, bool, error) {
	return ctx.Courses().OrderBy(byLevel).FirstOrDefault(pricedAbove(minPrice))
}

// LastStoredCourse returns the last course in the store. Store scans cannot
// be read in reverse, so it orders descending and takes the first.
func LastStoredCourse(ctx *db.Context) (core.Course, error) {
	return ctx.ScanCourses().OrderBy(query.Desc(func(c core.Course) int { return c.ID })).First()
}

func pricedAbove(minPrice float64) func(core.Course) bool {
	return func(c core.Course) bool { return c.FullPrice > minPrice }
}

func withID(id int) func(core.Course) bool {
	return func(c core.Course) bool { return c.ID == id }
}

func withAuthor(ctx *db.Context) func(core.Course) (CourseAuthor, error) {
	return func(c core.Course) (CourseAuthor, error) {
		author, err := ctx.AuthorOf(c)
		if err != nil {
			return CourseAuthor{}, err
		}
		return CourseAuthor{Course: c.Name, Author: author.Name}, nil
	}
}
