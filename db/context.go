package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/expr"
	"github.com/nickyhof/PlutoQuery/op"
	"github.com/nickyhof/PlutoQuery/ps"
	"github.com/nickyhof/PlutoQuery/query"
)

const (
	DefaultDatabase = "pluto"
	courseVariable  = "course"
)

var (
	ErrEmptyDatabaseName   = errors.New("database name must not be empty")
	ErrNilExpressionEngine = errors.New("expression engine must not be nil")
)

// Context is a read-only snapshot of the courses, authors and tags of one
// database. It is safe for concurrent reads once NewContext returns.
type Context struct {
	persistence *ps.Persistence
	identity    core.Identity
	database    string
	logger      zerolog.Logger
	engine      *expr.Engine

	courses     []core.Course
	authors     []core.Author
	tags        []core.Tag
	tagsByID    map[int]core.Tag
	authorIndex query.Index[int, core.Author]
	transaction ps.Transaction
}

// NewContext loads the snapshot of a seeded database.
func NewContext(persistence *ps.Persistence, identity core.Identity, opts ...Option) (*Context, error) {
	c := &Context{
		persistence: persistence,
		identity:    identity,
		database:    DefaultDatabase,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.engine == nil {
		engine, err := expr.NewEngine(courseVariable)
		if err != nil {
			return nil, fmt.Errorf("failed to create expression engine: %w", err)
		}
		c.engine = engine
	}

	if err := c.load(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Context) load() error {
	start := time.Now()

	dbOp, err := op.GetDatabase(c.database, c.persistence)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	authors, err := readTable[core.Author](dbOp, core.AuthorsTableName)
	if err != nil {
		return err
	}
	tags, err := readTable[core.Tag](dbOp, core.TagsTableName)
	if err != nil {
		return err
	}
	records, err := readTable[core.CourseRecord](dbOp, core.CoursesTableName)
	if err != nil {
		return err
	}

	tagsByID := core.TagsByID(tags)
	courses := make([]core.Course, 0, len(records))
	for _, record := range records {
		course, err := record.Resolve(tagsByID)
		if err != nil {
			return err
		}
		courses = append(courses, course)
	}

	dataset := core.Dataset{Courses: courses, Authors: authors, Tags: tags}
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("database %s: %w", c.database, err)
	}

	authorIndex, err := query.ToIndex(query.From(authors), func(a core.Author) int { return a.ID })
	if err != nil {
		return err
	}

	c.courses = courses
	c.authors = authors
	c.tags = tags
	c.tagsByID = tagsByID
	c.authorIndex = authorIndex
	c.transaction = c.persistence.LatestTransaction()

	history, err := c.persistence.History(0)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	c.logger.Info().
		Str("database", c.database).
		Strs("tables", dbOp.TableNames()).
		Str("transaction", c.transaction.Short()).
		Int("commits", len(history)).
		Str("identity", c.identity.String()).
		Int("courses", len(courses)).
		Int("authors", len(authors)).
		Int("tags", len(tags)).
		Dur("took", time.Since(start)).
		Msg("snapshot loaded")

	return nil
}

func readTable[T any](dbOp *op.DatabaseOp, table string) ([]T, error) {
	tableOp, err := dbOp.Table(table)
	if err != nil {
		return nil, err
	}

	var records []T
	for record, err := range op.Decode[T](tableOp) {
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (c *Context) Database() string {
	return c.database
}

// Transaction returns the store transaction the snapshot was read at.
func (c *Context) Transaction() ps.Transaction {
	return c.transaction
}

// Courses returns the courses in ID order.
func (c *Context) Courses() query.Seq[core.Course] {
	return query.From(c.courses)
}

// Authors returns the authors in ID order.
func (c *Context) Authors() query.Seq[core.Author] {
	return query.From(c.authors)
}

// Tags returns the tags in ID order.
func (c *Context) Tags() query.Seq[core.Tag] {
	return query.From(c.tags)
}

// ScanCourses streams the courses straight from the store instead of the
// snapshot. The sequence is forward-only, so Last fails with
// query.ErrReverseUnsupported.
func (c *Context) ScanCourses() query.Seq[core.Course] {
	return query.FromScan(func(yield func(core.Course, error) bool) {
		tableOp, err := op.GetTable(c.database, core.CoursesTableName, c.persistence)
		if err != nil {
			yield(core.Course{}, err)
			return
		}

		for record, err := range op.Decode[core.CourseRecord](tableOp) {
			if err != nil {
				yield(core.Course{}, err)
				return
			}
			course, err := record.Resolve(c.tagsByID)
			if err != nil {
				yield(core.Course{}, err)
				return
			}
			if !yield(course, nil) {
				return
			}
		}
	})
}

// AuthorOf navigates from a course to its author.
func (c *Context) AuthorOf(course core.Course) (core.Author, error) {
	author, ok := c.authorIndex.Get(course.AuthorID)
	if !ok {
		return core.Author{}, fmt.Errorf("course %d references author %d: %w", course.ID, course.AuthorID, core.ErrDanglingReference)
	}
	return author, nil
}

// CoursesWhere filters the courses by a CEL expression over the course
// variable, e.g. `course.level == 1`. The course fields are id, name, level,
// full_price, author_id, author (the author name) and tags (tag names).
func (c *Context) CoursesWhere(expression string) query.Seq[core.Course] {
	program, err := c.engine.Compile(expression)
	if err != nil {
		return query.Fail[core.Course](fmt.Errorf("courses where: %w", err))
	}

	c.logger.Debug().Str("expression", program.String()).Msg("expression compiled")

	return expr.Where(c.Courses(), program, c.bindCourse)
}

func (c *Context) bindCourse(course core.Course) map[string]any {
	fields := course.Fields()
	if author, ok := c.authorIndex.Get(course.AuthorID); ok {
		fields["author"] = author.Name
	}
	return map[string]any{courseVariable: fields}
}
