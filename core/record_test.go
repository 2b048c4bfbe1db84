package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDataset() Dataset {
	return Dataset{
		Authors: []Author{{ID: 1, Name: "Mosh"}, {ID: 2, Name: "Anthony"}},
		Tags:    []Tag{{ID: 1, Name: "c#"}, {ID: 2, Name: "javascript"}},
		Courses: []Course{
			{ID: 1, Name: "C# Basics", Level: 1, FullPrice: 49, AuthorID: 1, Tags: []Tag{{ID: 1, Name: "c#"}}},
			{ID: 2, Name: "JavaScript", Level: 2, FullPrice: 150, AuthorID: 2},
		},
	}
}

func TestDatasetValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Dataset)
		wantErr error
	}{
		{name: "valid", mutate: func(d *Dataset) {}},
		{
			name:    "duplicate_author",
			mutate:  func(d *Dataset) { d.Authors = append(d.Authors, Author{ID: 1, Name: "Again"}) },
			wantErr: ErrDuplicateID,
		},
		{
			name:    "duplicate_course",
			mutate:  func(d *Dataset) { d.Courses = append(d.Courses, Course{ID: 2, Name: "Dup", AuthorID: 1}) },
			wantErr: ErrDuplicateID,
		},
		{
			name:    "duplicate_tag",
			mutate:  func(d *Dataset) { d.Tags = append(d.Tags, Tag{ID: 2, Name: "dup"}) },
			wantErr: ErrDuplicateID,
		},
		{
			name:    "unknown_author",
			mutate:  func(d *Dataset) { d.Courses[0].AuthorID = 99 },
			wantErr: ErrDanglingReference,
		},
		{
			name:    "unknown_tag",
			mutate:  func(d *Dataset) { d.Courses[0].Tags = []Tag{{ID: 42, Name: "go"}} },
			wantErr: ErrDanglingReference,
		},
		{
			name:    "renamed_tag",
			mutate:  func(d *Dataset) { d.Courses[0].Tags = []Tag{{ID: 1, Name: "csharp"}} },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "zero_author_id",
			mutate:  func(d *Dataset) { d.Authors = append(d.Authors, Author{ID: 0, Name: "Zero"}) },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "negative_course_id",
			mutate:  func(d *Dataset) { d.Courses[1].ID = -2 },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "course_id_too_large",
			mutate:  func(d *Dataset) { d.Courses[1].ID = MaxID + 1 },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "tag_id_too_large",
			mutate:  func(d *Dataset) { d.Tags = append(d.Tags, Tag{ID: 100000000, Name: "big"}) },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "negative_price",
			mutate:  func(d *Dataset) { d.Courses[1].FullPrice = -1 },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "unnamed_course",
			mutate:  func(d *Dataset) { d.Courses[1].Name = "" },
			wantErr: ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDataset()
			tt.mutate(&d)

			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCourseFields(t *testing.T) {
	course := validDataset().Courses[0]

	fields := course.Fields()
	assert.Equal(t, int64(1), fields["id"])
	assert.Equal(t, "C# Basics", fields["name"])
	assert.Equal(t, int64(1), fields["level"])
	assert.Equal(t, 49.0, fields["full_price"])
	assert.Equal(t, []any{"c#"}, fields["tags"])
	assert.Equal(t, []int{1}, course.TagIDs())
}

func TestRecordKeyOrdersNumerically(t *testing.T) {
	assert.Less(t, RecordKey(2), RecordKey(10))
	assert.Equal(t, "00000025", RecordKey(25))
	assert.Less(t, RecordKey(20000000), RecordKey(MaxID))
	assert.Len(t, RecordKey(MaxID), len(RecordKey(1)))
}

func TestCourseRecordResolve(t *testing.T) {
	d := validDataset()
	record := d.Courses[0].Record()
	assert.Equal(t, []int{1}, record.TagIDs)

	course, err := record.Resolve(TagsByID(d.Tags))
	require.NoError(t, err)
	assert.Equal(t, d.Courses[0], course)

	record.TagIDs = []int{7}
	_, err = record.Resolve(TagsByID(d.Tags))
	assert.ErrorIs(t, err, ErrDanglingReference)
}
