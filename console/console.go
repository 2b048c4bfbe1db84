package console

import (
	"fmt"
	"io"
)

// Console writes demo output one line at a time. The first write error is
// kept and every later write is skipped.
type Console struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Println(a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintln(c.w, a...)
}

// Printf writes a formatted line. A trailing newline is added.
func (c *Console) Printf(format string, a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format+"\n", a...)
}

// Table renders rows under headers as an ASCII table.
func (c *Console) Table(headers []string, rows [][]string) {
	if c.err != nil {
		return
	}
	table := NewTable(c.w)
	table.Header(headers)
	table.Bulk(rows)
	c.err = table.Render()
}

// Err returns the first write error, if any.
func (c *Console) Err() error {
	return c.err
}
