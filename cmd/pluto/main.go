package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nickyhof/PlutoQuery"
	"github.com/nickyhof/PlutoQuery/catalog"
	"github.com/nickyhof/PlutoQuery/console"
	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/db"
	"github.com/nickyhof/PlutoQuery/fixture"
	"github.com/nickyhof/PlutoQuery/ps"
)

// Version is set at build time via -ldflags
var Version = "dev"

var identity = core.Identity{Name: "PlutoQuery", Email: "pluto@plutoquery.local"}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Str("version", Version).
		Logger()

	if err := run(os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("pluto failed")
	}
}

// run seeds the built-in dataset into an in-memory store and runs the whole
// catalog once.
func run(w io.Writer, logger zerolog.Logger) error {
	dataset, err := fixture.Load()
	if err != nil {
		return err
	}

	persistence, err := ps.NewMemoryPersistence()
	if err != nil {
		return err
	}
	instance := PlutoQuery.Open(&persistence)

	out := console.New(w)

	seeded, err := instance.Seed(dataset, identity)
	if err != nil {
		return err
	}
	seeded.Display(out)
	out.Println()

	ctx, err := instance.Context(identity, db.WithLogger(logger))
	if err != nil {
		return err
	}

	return catalog.NewRunner(ctx, out, logger).Run()
}
