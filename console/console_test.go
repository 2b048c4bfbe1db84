package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf)

	out.Println("key:", 1)
	out.Printf("\t%s", "C# Basics")
	out.Printf("%d, (%d)", 2, 11)

	require.NoError(t, out.Err())
	assert.Equal(t, "key: 1\n\tC# Basics\n2, (11)\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf)

	out.Table([]string{"Name", "Level"}, [][]string{{"C#", "1"}, {"Angular JS", "3"}})

	expected := "" +
		"+------------+-------+\n" +
		"| Name       | Level |\n" +
		"+------------+-------+\n" +
		"| C#         | 1     |\n" +
		"| Angular JS | 3     |\n" +
		"+------------+-------+\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableWidthCountsRunes(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf)
	table.Header([]string{"Name"})
	table.Row([]string{"Café"})

	require.NoError(t, table.Render())
	assert.Contains(t, buf.String(), "| Café |")
	assert.Contains(t, buf.String(), "+------+")
}

func TestEmptyTableRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTable(&buf).Render())
	assert.Empty(t, buf.String())
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("closed")
}

func TestFirstErrorSticks(t *testing.T) {
	w := &failingWriter{}
	out := New(w)

	out.Println("a")
	out.Println("b")
	out.Table([]string{"x"}, nil)

	assert.EqualError(t, out.Err(), "closed")
	assert.Equal(t, 1, w.writes)
}
