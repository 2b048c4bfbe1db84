package core

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID       = errors.New("duplicate id")
	ErrDanglingReference = errors.New("dangling reference")
	ErrInvalidRecord     = errors.New("invalid record")
)

type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Course is a course offered by a single author. Tags keeps the order the
// course lists them in.
type Course struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Level     int     `json:"level"`
	FullPrice float64 `json:"full_price"`
	AuthorID  int     `json:"author_id"`
	Tags      []Tag   `json:"tags"`
}

// TagIDs returns the IDs of the course tags in order.
func (c Course) TagIDs() []int {
	ids := make([]int, len(c.Tags))
	for i, tag := range c.Tags {
		ids[i] = tag.ID
	}
	return ids
}

// Fields exposes the course as a plain map, keyed by column name.
func (c Course) Fields() map[string]any {
	tags := make([]any, len(c.Tags))
	for i, tag := range c.Tags {
		tags[i] = tag.Name
	}
	return map[string]any{
		"id":         int64(c.ID),
		"name":       c.Name,
		"level":      int64(c.Level),
		"full_price": c.FullPrice,
		"author_id":  int64(c.AuthorID),
		"tags":       tags,
	}
}

type Dataset struct {
	Courses []Course `json:"courses"`
	Authors []Author `json:"authors"`
	Tags    []Tag    `json:"tags"`
}

// Validate checks ID uniqueness and referential integrity across the three
// collections.
func (d Dataset) Validate() error {
	authors := make(map[int]bool, len(d.Authors))
	for _, author := range d.Authors {
		if err := checkID("author", author.ID); err != nil {
			return err
		}
		if authors[author.ID] {
			return fmt.Errorf("author %d: %w", author.ID, ErrDuplicateID)
		}
		if author.Name == "" {
			return fmt.Errorf("author %d has no name: %w", author.ID, ErrInvalidRecord)
		}
		authors[author.ID] = true
	}

	tags := make(map[int]Tag, len(d.Tags))
	for _, tag := range d.Tags {
		if err := checkID("tag", tag.ID); err != nil {
			return err
		}
		if _, exists := tags[tag.ID]; exists {
			return fmt.Errorf("tag %d: %w", tag.ID, ErrDuplicateID)
		}
		tags[tag.ID] = tag
	}

	courses := make(map[int]bool, len(d.Courses))
	for _, course := range d.Courses {
		if err := checkID("course", course.ID); err != nil {
			return err
		}
		if courses[course.ID] {
			return fmt.Errorf("course %d: %w", course.ID, ErrDuplicateID)
		}
		courses[course.ID] = true

		if course.Name == "" {
			return fmt.Errorf("course %d has no name: %w", course.ID, ErrInvalidRecord)
		}
		if course.FullPrice < 0 {
			return fmt.Errorf("course %d has negative price %.2f: %w", course.ID, course.FullPrice, ErrInvalidRecord)
		}
		if !authors[course.AuthorID] {
			return fmt.Errorf("course %d references author %d: %w", course.ID, course.AuthorID, ErrDanglingReference)
		}
		for _, tag := range course.Tags {
			known, exists := tags[tag.ID]
			if !exists {
				return fmt.Errorf("course %d references tag %d: %w", course.ID, tag.ID, ErrDanglingReference)
			}
			if known.Name != tag.Name {
				return fmt.Errorf("course %d tag %d is named %q, expected %q: %w", course.ID, tag.ID, tag.Name, known.Name, ErrInvalidRecord)
			}
		}
	}

	return nil
}

func checkID(kind string, id int) error {
	if id < 1 || id > MaxID {
		return fmt.Errorf("%s id %d outside [1, %d]: %w", kind, id, MaxID, ErrInvalidRecord)
	}
	return nil
}

// CourseRecord is the stored form of a course. Tags are referenced by ID.
type CourseRecord struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Level     int     `json:"level"`
	FullPrice float64 `json:"full_price"`
	AuthorID  int     `json:"author_id"`
	TagIDs    []int   `json:"tag_ids"`
}

// Record returns the stored form of the course.
func (c Course) Record() CourseRecord {
	return CourseRecord{
		ID:        c.ID,
		Name:      c.Name,
		Level:     c.Level,
		FullPrice: c.FullPrice,
		AuthorID:  c.AuthorID,
		TagIDs:    c.TagIDs(),
	}
}

// Resolve turns the tag IDs into tags.
func (r CourseRecord) Resolve(tags map[int]Tag) (Course, error) {
	course := Course{
		ID:        r.ID,
		Name:      r.Name,
		Level:     r.Level,
		FullPrice: r.FullPrice,
		AuthorID:  r.AuthorID,
		Tags:      make([]Tag, 0, len(r.TagIDs)),
	}
	for _, id := range r.TagIDs {
		tag, exists := tags[id]
		if !exists {
			return Course{}, fmt.Errorf("course %d references tag %d: %w", r.ID, id, ErrDanglingReference)
		}
		course.Tags = append(course.Tags, tag)
	}
	return course, nil
}

// TagsByID indexes tags by ID.
func TagsByID(tags []Tag) map[int]Tag {
	byID := make(map[int]Tag, len(tags))
	for _, tag := range tags {
		byID[tag.ID] = tag
	}
	return byID
}
