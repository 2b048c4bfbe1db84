package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/nickyhof/PlutoQuery/console"
	"github.com/nickyhof/PlutoQuery/ps"
	"github.com/nickyhof/PlutoQuery/query"
)

type QueryResult struct {
	Columns          []string
	Data             [][]string
	RecordsRead      int
	ExecutionTimeSec float64
	ExecutionOps     int
}

type CommitResult struct {
	Transaction      ps.Transaction
	TablesCreated    int
	RecordsWritten   int
	RecordsDeleted   int
	ExecutionTimeSec float64
	ExecutionOps     int
}

// Tabulate evaluates s and renders every element as a row of columns.
func Tabulate[T any](s query.Seq[T], columns []string, row func(T) []string) (QueryResult, error) {
	if row == nil {
		return QueryResult{}, fmt.Errorf("tabulate: %w", query.ErrNilFunc)
	}

	start := time.Now()
	result := QueryResult{Columns: columns}
	for item, err := range s.Iter() {
		if err != nil {
			return QueryResult{}, err
		}
		result.Data = append(result.Data, row(item))
		result.RecordsRead++
	}
	result.ExecutionTimeSec = time.Since(start).Seconds()
	result.ExecutionOps = result.RecordsRead

	return result, nil
}

// formatDuration formats a duration in human-readable form
func formatDuration(secs float64) string {
	if secs < 0.001 {
		return "<1ms"
	} else if secs < 0.01 {
		return fmt.Sprintf("%dms", int(secs*1000))
	} else if secs < 1 {
		ms := secs * 1000
		if ms < 10 {
			return fmt.Sprintf("%.1fms", ms)
		}
		return fmt.Sprintf("%dms", int(ms))
	} else if secs < 60 {
		if secs < 10 {
			return fmt.Sprintf("%.1fs", secs)
		}
		return fmt.Sprintf("%ds", int(secs))
	} else {
		mins := int(secs / 60)
		remainSecs := int(secs) % 60
		if remainSecs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm%ds", mins, remainSecs)
	}
}

func formatThroughput(ops int, secs float64) string {
	if secs <= 0 || ops <= 0 {
		return ""
	}
	perSec := float64(ops) / secs
	if perSec >= 1000000 {
		return fmt.Sprintf(", %.1fM ops/s", perSec/1000000)
	} else if perSec >= 1000 {
		return fmt.Sprintf(", %.1fK ops/s", perSec/1000)
	}
	return fmt.Sprintf(", %.0f ops/s", perSec)
}

func (result QueryResult) ExecutionTime() string {
	return formatDuration(result.ExecutionTimeSec)
}

func (result CommitResult) ExecutionTime() string {
	return formatDuration(result.ExecutionTimeSec)
}

func (result QueryResult) Display(out *console.Console) {
	// Show data table first if there is data
	if len(result.Data) > 0 {
		out.Table(result.Columns, result.Data)
	}

	out.Printf("%d rows (%s%s)", result.RecordsRead, result.ExecutionTime(),
		formatThroughput(result.ExecutionOps, result.ExecutionTimeSec))
}

func (result CommitResult) Display(out *console.Console) {
	var parts []string

	if result.TablesCreated > 0 {
		parts = append(parts, fmt.Sprintf("%d table(s) created", result.TablesCreated))
	}
	if result.RecordsWritten > 0 {
		parts = append(parts, fmt.Sprintf("%d record(s) written", result.RecordsWritten))
	}
	if result.RecordsDeleted > 0 {
		parts = append(parts, fmt.Sprintf("%d record(s) deleted", result.RecordsDeleted))
	}

	throughput := formatThroughput(result.ExecutionOps, result.ExecutionTimeSec)

	if len(parts) == 0 {
		out.Printf("OK (%s%s)", result.ExecutionTime(), throughput)
	} else {
		out.Printf("%s at %s (%s%s)", strings.Join(parts, ", "), result.Transaction.Short(), result.ExecutionTime(), throughput)
	}
}
