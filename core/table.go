package core

import "fmt"

type ColumnType int

const (
	StringType ColumnType = iota
	IntType
	FloatType
	ListType
)

type Column struct {
	Name       string     `json:"name"`
	Type       ColumnType `json:"type"`
	PrimaryKey bool       `json:"primaryKey"`
	References string     `json:"references,omitempty"` // "table.column" for foreign keys
}

type Table struct {
	Database string   `json:"database"`
	Name     string   `json:"name"`
	Columns  []Column `json:"columns"`
}

const (
	AuthorsTableName = "authors"
	CoursesTableName = "courses"
	TagsTableName    = "tags"
)

func AuthorsTable(database string) Table {
	return Table{
		Database: database,
		Name:     AuthorsTableName,
		Columns: []Column{
			{Name: "id", Type: IntType, PrimaryKey: true},
			{Name: "name", Type: StringType},
		},
	}
}

func TagsTable(database string) Table {
	return Table{
		Database: database,
		Name:     TagsTableName,
		Columns: []Column{
			{Name: "id", Type: IntType, PrimaryKey: true},
			{Name: "name", Type: StringType},
		},
	}
}

func CoursesTable(database string) Table {
	return Table{
		Database: database,
		Name:     CoursesTableName,
		Columns: []Column{
			{Name: "id", Type: IntType, PrimaryKey: true},
			{Name: "name", Type: StringType},
			{Name: "level", Type: IntType},
			{Name: "full_price", Type: FloatType},
			{Name: "author_id", Type: IntType, References: AuthorsTableName + ".id"},
			{Name: "tag_ids", Type: ListType, References: TagsTableName + ".id"},
		},
	}
}

// MaxID is the largest ID RecordKey keeps in numeric order.
const MaxID = 99999999

// RecordKey formats an ID as a store key. Keys are zero padded so the store's
// lexicographic key order matches numeric ID order for IDs in [1, MaxID].
func RecordKey(id int) string {
	return fmt.Sprintf("%08d", id)
}
