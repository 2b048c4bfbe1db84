package query

import "errors"

var (
	// ErrNotFound is returned by First, Last and Single when no element matches.
	ErrNotFound = errors.New("sequence contains no matching element")
	// ErrMoreThanOne is returned by Single and SingleOrDefault when two or more
	// elements match.
	ErrMoreThanOne = errors.New("sequence contains more than one matching element")
	// ErrEmptySequence is returned by Max, Min and Average on an empty sequence.
	ErrEmptySequence = errors.New("sequence contains no elements")
	// ErrReverseUnsupported is returned by Last and LastOrDefault on sequences
	// that can only be read forward, such as store scans. Order descending and
	// take First instead.
	ErrReverseUnsupported = errors.New("sequence cannot be read in reverse; order descending and take First instead")
	ErrNilFunc            = errors.New("nil function")
	ErrNegativeCount      = errors.New("count must not be negative")
	ErrInvalidPage        = errors.New("page must be at least 1 and size must not be negative")
	ErrDuplicateKey       = errors.New("duplicate key")
)
