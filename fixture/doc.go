// Package fixture supplies the dataset the demonstrator queries.
//
// The built-in dataset is an embedded JSON document of 25 courses, 6 authors
// and 8 tags:
//
//	dataset, err := fixture.Load()
//
// Parse accepts any document of the same shape. Courses reference their
// author by author_id and their tags by tag_ids:
//
//	{
//	  "authors": [{"id": 1, "name": "Mosh Hamedani"}],
//	  "tags":    [{"id": 1, "name": "c#"}],
//	  "courses": [{"id": 1, "name": "C# Basics", "level": 1,
//	               "full_price": 19, "author_id": 1, "tag_ids": [1]}]
//	}
//
// Documents that do not match the schema fail with ErrInvalidDocument.
// Broken references fail with core.ErrDanglingReference.
package fixture
