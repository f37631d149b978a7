package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned two-column table.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders data as a table.
// Supports: *Table, map[string]any (sorted by key), []string and scalars.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case *Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case map[string]any:
		return mapToTable(v).RenderWithOptions(w, f.NoHeaders)
	case []string:
		t := &Table{Headers: []string{"VALUE"}}
		for _, s := range v {
			t.AddRow(s)
		}
		return t.RenderWithOptions(w, f.NoHeaders)
	default:
		_, err := fmt.Fprintln(w, formatValue(v))
		return err
	}
}

// mapToTable converts a configuration map to a key-value table.
func mapToTable(m map[string]any) *Table {
	t := &Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		t.AddRow(k, formatValue(m[k]))
	}
	return t
}

// formatValue renders scalars as-is and nested values as compact JSON.
func formatValue(v any) string {
	if v == nil {
		return "~"
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	default:
		s := fmt.Sprintf("%v", v)
		return strings.ReplaceAll(s, "\n", `\n`)
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
