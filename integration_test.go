package PlutoQuery

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nickyhof/PlutoQuery/catalog"
	"github.com/nickyhof/PlutoQuery/console"
	"github.com/nickyhof/PlutoQuery/core"
	"github.com/nickyhof/PlutoQuery/fixture"
	"github.com/nickyhof/PlutoQuery/ps"
	"github.com/nickyhof/PlutoQuery/query"
)

var testIdentity = core.Identity{Name: "test", Email: "test@test.com"}

// TestFunc is the signature for test functions that work with any persistence
type TestFunc func(t *testing.T, instance *Instance)

// runWithBothPersistence runs a test function with both memory and file persistence
func runWithBothPersistence(t *testing.T, testFunc TestFunc) {
	t.Run("Memory", func(t *testing.T) {
		persistence, err := ps.NewMemoryPersistence()
		if err != nil {
			t.Fatalf("Failed to initialize memory persistence: %v", err)
		}
		testFunc(t, Open(&persistence))
	})

	t.Run("File", func(t *testing.T) {
		persistence, err := ps.NewFilePersistence(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to initialize file persistence: %v", err)
		}
		testFunc(t, Open(&persistence))
	})
}

// TestIntegrationWorkflow seeds the fixture, loads a context and runs the catalog
func TestIntegrationWorkflow(t *testing.T) {
	runWithBothPersistence(t, func(t *testing.T, instance *Instance) {
		dataset, err := fixture.Load()
		if err != nil {
			t.Fatalf("Failed to load fixture: %v", err)
		}

		result, err := instance.Seed(dataset, testIdentity)
		if err != nil {
			t.Fatalf("Failed to seed: %v", err)
		}
		if result.RecordsWritten != 39 {
			t.Errorf("Expected 39 records written, got %d", result.RecordsWritten)
		}

		ctx, err := instance.Context(testIdentity)
		if err != nil {
			t.Fatalf("Failed to load context: %v", err)
		}
		if ctx.Transaction().Id != result.Transaction.Id {
			t.Errorf("Expected context at %s, got %s", result.Transaction.Short(), ctx.Transaction().Short())
		}

		count, err := ctx.Courses().Count()
		if err != nil || count != 25 {
			t.Fatalf("Expected 25 courses, got %d (%v)", count, err)
		}

		scanned, err := ctx.ScanCourses().Count()
		if err != nil || scanned != 25 {
			t.Fatalf("Expected 25 scanned courses, got %d (%v)", scanned, err)
		}

		var buf bytes.Buffer
		out := console.New(&buf)
		if err := catalog.NewRunner(ctx, out, zerolog.Nop()).Run(); err != nil {
			t.Fatalf("Catalog run failed: %v", err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("Average: 71.04")) {
			t.Error("Expected aggregates in catalog output")
		}
	})
}

// TestIntegrationReseed checks that a second seed produces a new snapshot
func TestIntegrationReseed(t *testing.T) {
	runWithBothPersistence(t, func(t *testing.T, instance *Instance) {
		dataset, err := fixture.Load()
		if err != nil {
			t.Fatalf("Failed to load fixture: %v", err)
		}
		if _, err := instance.Seed(dataset, testIdentity); err != nil {
			t.Fatalf("Failed to seed: %v", err)
		}

		dataset.Courses[0].Name = "C# Basics for Beginners"
		second, err := instance.Seed(dataset, testIdentity)
		if err != nil {
			t.Fatalf("Failed to reseed: %v", err)
		}

		ctx, err := instance.Context(testIdentity)
		if err != nil {
			t.Fatalf("Failed to load context: %v", err)
		}
		if ctx.Transaction().Id != second.Transaction.Id {
			t.Error("Expected context at the latest seed")
		}

		first, err := ctx.Courses().First()
		if err != nil {
			t.Fatalf("Failed to read first course: %v", err)
		}
		if first.Name != "C# Basics for Beginners" {
			t.Errorf("Expected renamed course, got %s", first.Name)
		}

		history, err := instance.Persistence.History(0)
		if err != nil {
			t.Fatalf("Failed to read history: %v", err)
		}
		if len(history) != 2 {
			t.Errorf("Expected 2 commits, got %d", len(history))
		}

		_, err = ctx.Courses().Single(func(c core.Course) bool { return c.Level == 3 })
		if err == nil {
			t.Error("Expected Single over several level 3 courses to fail")
		} else if !errors.Is(err, query.ErrMoreThanOne) {
			t.Errorf("Expected ErrMoreThanOne, got %v", err)
		}
	})
}
