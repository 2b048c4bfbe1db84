package db

import (
	"github.com/rs/zerolog"

	"github.com/nickyhof/PlutoQuery/expr"
)

// Option defines a functional option for configuring a Context.
type Option func(*Context) error

// WithDatabase sets the database the context reads. Defaults to
// DefaultDatabase.
func WithDatabase(name string) Option {
	return func(c *Context) error {
		if name == "" {
			return ErrEmptyDatabaseName
		}

		c.database = name

		return nil
	}
}

// WithLogger sets the logger. Loading is logged at Info level, each
// expression compilation at Debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Context) error {
		c.logger = logger
		return nil
	}
}

// WithExpressionEngine sets the engine used by CoursesWhere. The engine must
// declare the "course" variable.
func WithExpressionEngine(engine *expr.Engine) Option {
	return func(c *Context) error {
		if engine == nil {
			return ErrNilExpressionEngine
		}

		c.engine = engine

		return nil
	}
}
