package fixture

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/xeipuuv/gojsonschema"

	"github.com/nickyhof/PlutoQuery/core"
)

var ErrInvalidDocument = errors.New("invalid dataset document")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed pluto.json
var defaultDocument []byte

//go:embed schema.json
var schemaDocument string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaDocument))
	if err != nil {
		return nil, fmt.Errorf("invalid json schema: %w", err)
	}
	return schema, nil
})

type document struct {
	Authors []core.Author       `json:"authors"`
	Tags    []core.Tag          `json:"tags"`
	Courses []core.CourseRecord `json:"courses"`
}

// Load returns the built-in dataset.
func Load() (core.Dataset, error) {
	return Parse(defaultDocument)
}

// Parse validates data against the dataset schema, decodes it and checks its
// integrity.
func Parse(data []byte) (core.Dataset, error) {
	schema, err := compiledSchema()
	if err != nil {
		return core.Dataset{}, err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return core.Dataset{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return core.Dataset{}, fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(errs, "; "))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return core.Dataset{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	tags := core.TagsByID(doc.Tags)
	dataset := core.Dataset{
		Authors: doc.Authors,
		Tags:    doc.Tags,
		Courses: make([]core.Course, 0, len(doc.Courses)),
	}
	for _, record := range doc.Courses {
		course, err := record.Resolve(tags)
		if err != nil {
			return core.Dataset{}, err
		}
		dataset.Courses = append(dataset.Courses, course)
	}

	if err := dataset.Validate(); err != nil {
		return core.Dataset{}, err
	}

	return dataset, nil
}
