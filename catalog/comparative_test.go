//go:build comparative

package catalog

import (
	"testing"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/fixture"
	"github.com/nickyhof/PlutoQuery/query"
)

// DuckDB accepts the quoting and literals of the postgres dialect.
const dialectPostgres = "postgres"

var dialect = goqu.Dialect(dialectPostgres)

// setupDuckDB loads the fixture dataset into an in-memory DuckDB.
func setupDuckDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dataset, err := fixture.Load()
	require.NoError(t, err)

	duck, err := sqlx.Open("duckdb", "")
	require.NoError(t, err)
	t.Cleanup(func() { duck.Close() })

	for _, ddl := range []string{
		`CREATE TABLE authors (id INTEGER PRIMARY KEY, name VARCHAR)`,
		`CREATE TABLE tags (id INTEGER PRIMARY KEY, name VARCHAR)`,
		`CREATE TABLE courses (id INTEGER PRIMARY KEY, name VARCHAR, level INTEGER, full_price DOUBLE, author_id INTEGER)`,
		`CREATE TABLE course_tags (course_id INTEGER, position INTEGER, tag_id INTEGER)`,
	} {
		_, err := duck.Exec(ddl)
		require.NoError(t, err)
	}

	var authors, tags, courses, courseTags []any
	for _, a := range dataset.Authors {
		authors = append(authors, goqu.Record{"id": a.ID, "name": a.Name})
	}
	for _, tag := range dataset.Tags {
		tags = append(tags, goqu.Record{"id": tag.ID, "name": tag.Name})
	}
	for _, c := range dataset.Courses {
		courses = append(courses, goqu.Record{
			"id": c.ID, "name": c.Name, "level": c.Level, "full_price": c.FullPrice, "author_id": c.AuthorID,
		})
		for i, tag := range c.Tags {
			courseTags = append(courseTags, goqu.Record{"course_id": c.ID, "position": i, "tag_id": tag.ID})
		}
	}

	for table, rows := range map[string][]any{
		core.AuthorsTableName: authors,
		core.TagsTableName:    tags,
		core.CoursesTableName: courses,
		"course_tags":         courseTags,
	} {
		insert, _, err := dialect.Insert(table).Rows(rows...).ToSQL()
		require.NoError(t, err)
		_, err = duck.Exec(insert)
		require.NoError(t, err)
	}

	return duck
}

func selectSQL(t *testing.T, ds *goqu.SelectDataset) string {
	t.Helper()
	sqlQuery, _, err := ds.ToSQL()
	require.NoError(t, err)
	return sqlQuery
}

func TestComparativeFilterOrder(t *testing.T) {
	duck := setupDuckDB(t)
	ctx := setupTestContext(t)

	var expected []int
	require.NoError(t, duck.Select(&expected, selectSQL(t, dialect.
		From(core.CoursesTableName).
		Select("id").
		Where(goqu.C("author_id").Eq(1)).
		Order(goqu.C("level").Desc(), goqu.C("name").Asc(), goqu.C("id").Asc()))))

	assert.Equal(t, expected, courseIDs(t, CoursesByAuthor(ctx, 1)))
}

func TestComparativeGroupJoin(t *testing.T) {
	duck := setupDuckDB(t)
	ctx := setupTestContext(t)

	var expected []AuthorCount
	require.NoError(t, duck.Select(&expected, selectSQL(t, dialect.
		From(goqu.T(core.AuthorsTableName).As("a")).
		LeftJoin(goqu.T(core.CoursesTableName).As("c"), goqu.On(goqu.I("c.author_id").Eq(goqu.I("a.id")))).
		Select(goqu.I("a.name").As("author"), goqu.COUNT(goqu.I("c.id")).As("courses")).
		GroupBy(goqu.I("a.id"), goqu.I("a.name")).
		Order(goqu.I("a.id").Asc()))))

	counts, err := AuthorCourseCounts(ctx).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, expected, counts)
}

func TestComparativeInnerJoin(t *testing.T) {
	duck := setupDuckDB(t)
	ctx := setupTestContext(t)

	var expected []CourseAuthor
	require.NoError(t, duck.Select(&expected, selectSQL(t, dialect.
		From(goqu.T(core.CoursesTableName).As("c")).
		InnerJoin(goqu.T(core.AuthorsTableName).As("a"), goqu.On(goqu.I("c.author_id").Eq(goqu.I("a.id")))).
		Select(goqu.I("c.name").As("course"), goqu.I("a.name").As("author")).
		Order(goqu.I("c.id").Asc()))))

	joined, err := CourseAuthorJoin(ctx).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, expected, joined)

	var crossCount int
	require.NoError(t, duck.Get(&crossCount, selectSQL(t, dialect.
		From(core.AuthorsTableName).
		CrossJoin(goqu.T(core.CoursesTableName)).
		Select(goqu.COUNT(goqu.Star())))))

	pairs, err := AuthorCourseCrossJoin(ctx).Count()
	require.NoError(t, err)
	assert.Equal(t, crossCount, pairs)
}

func TestComparativeDistinctTags(t *testing.T) {
	duck := setupDuckDB(t)
	ctx := setupTestContext(t)

	var expected []string
	require.NoError(t, duck.Select(&expected, selectSQL(t, dialect.
		From(goqu.T("course_tags").As("ct")).
		InnerJoin(goqu.T(core.CoursesTableName).As("c"), goqu.On(goqu.I("ct.course_id").Eq(goqu.I("c.id")))).
		InnerJoin(goqu.T(core.TagsTableName).As("t"), goqu.On(goqu.I("ct.tag_id").Eq(goqu.I("t.id")))).
		Select(goqu.I("t.name")).
		Where(goqu.I("c.level").Eq(1)).
		Order(goqu.I("c.name").Asc(), goqu.I("ct.position").Asc()))))

	tags, err := query.Select(TagsAtLevel(ctx, 1), func(t core.Tag) string { return t.Name }).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, expected, tags)

	distinct, err := query.Select(DistinctTagsAtLevel(ctx, 1), func(t core.Tag) string { return t.Name }).ToSlice()
	require.NoError(t, err)
	assert.ElementsMatch(t, distinctStrings(expected), distinct)
}

func distinctStrings(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func TestComparativePartition(t *testing.T) {
	duck := setupDuckDB(t)
	ctx := setupTestContext(t)

	var expected []int
	require.NoError(t, duck.Select(&expected, selectSQL(t, dialect.
		From(core.CoursesTableName).
		Select("id").
		Order(goqu.C("id").Asc()).
		Offset(10).
		Limit(10))))

	assert.Equal(t, expected, courseIDs(t, CoursePage(ctx, 2, 10)))
}

func TestComparativeAggregates(t *testing.T) {
	duck := setupDuckDB(t)
	ctx := setupTestContext(t)

	var expected struct {
		Count   int     `db:"n"`
		Max     float64 `db:"max_price"`
		Min     float64 `db:"min_price"`
		Average float64 `db:"avg_price"`
	}
	require.NoError(t, duck.Get(&expected, selectSQL(t, dialect.
		From(core.CoursesTableName).
		Select(
			goqu.COUNT(goqu.Star()).As("n"),
			goqu.MAX("full_price").As("max_price"),
			goqu.MIN("full_price").As("min_price"),
			goqu.AVG("full_price").As("avg_price"),
		))))

	price := func(c core.Course) float64 { return c.FullPrice }

	count, err := ctx.Courses().Count()
	require.NoError(t, err)
	maxPrice, err := query.Max(ctx.Courses(), price)
	require.NoError(t, err)
	minPrice, err := query.Min(ctx.Courses(), price)
	require.NoError(t, err)
	average, err := query.Average(ctx.Courses(), price)
	require.NoError(t, err)

	assert.Equal(t, expected.Count, count)
	assert.Equal(t, expected.Max, maxPrice)
	assert.Equal(t, expected.Min, minPrice)
	assert.InDelta(t, expected.Average, average, 1e-9)

	var first int
	require.NoError(t, duck.Get(&first, selectSQL(t, dialect.
		From(core.CoursesTableName).
		Select("id").
		Where(goqu.C("full_price").Gt(100)).
		Order(goqu.C("level").Asc(), goqu.C("id").Asc()).
		Limit(1))))

	course, err := FirstExpensiveCourse(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, first, course.ID)
}
