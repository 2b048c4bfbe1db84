package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRun(t *testing.T) {
	var stdout, logs bytes.Buffer

	if err := run(&stdout, zerolog.New(&logs)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	output := stdout.String()
	if !strings.HasPrefix(output, "3 table(s) created, 39 record(s) written at ") {
		t.Errorf("Expected seed summary first, got %q", strings.SplitN(output, "\n", 2)[0])
	}
	if !strings.Contains(output, "== Aggregates ==") {
		t.Error("Expected the last catalog entry in the output")
	}

	if !strings.Contains(logs.String(), `"message":"catalog run finished"`) {
		t.Errorf("Expected run completion log, got %s", logs.String())
	}
	if !strings.Contains(logs.String(), `"message":"snapshot loaded"`) {
		t.Error("Expected snapshot log")
	}
}
