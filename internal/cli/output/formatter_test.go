package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  Format
		want    string
		wantErr bool
	}{
		{FormatJSON, "*output.JSONFormatter", false},
		{FormatYAML, "*output.YAMLFormatter", false},
		{FormatTable, "*output.TableFormatter", false},
		{"", "*output.TableFormatter", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := NewFormatter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Error("NewFormatter() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFormatter() error = %v", err)
			}

			var got string
			switch f.(type) {
			case *JSONFormatter:
				got = "*output.JSONFormatter"
			case *YAMLFormatter:
				got = "*output.YAMLFormatter"
			case *TableFormatter:
				got = "*output.TableFormatter"
			}
			if got != tt.want {
				t.Errorf("NewFormatter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"name": "app", "port": 8080}

	if err := (&JSONFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"name": "app"`) {
		t.Errorf("Format() missing name field: %s", out)
	}
	if !strings.Contains(out, `"port": 8080`) {
		t.Errorf("Format() missing port field: %s", out)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{
		"name": "app",
		"database": map[string]any{
			"host": "localhost",
		},
	}

	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "database:\n  host: localhost\nname: app\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTableFormatter_Map(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{
		"zeta":  "last",
		"alpha": 1,
		"list":  []any{"a", "b"},
		"empty": nil,
	}

	if err := (&TableFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "KEY") {
		t.Errorf("header = %q", lines[0])
	}
	wantOrder := []string{"alpha", "empty", "list", "zeta"}
	for i, key := range wantOrder {
		if !strings.HasPrefix(lines[i+1], key) {
			t.Errorf("line %d = %q, want key %s", i+1, lines[i+1], key)
		}
	}
	if !strings.Contains(lines[3], `["a","b"]`) {
		t.Errorf("nested value should be compact JSON: %q", lines[3])
	}
	if !strings.Contains(lines[2], "~") {
		t.Errorf("nil value should render as ~: %q", lines[2])
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}
	if err := f.Format(&buf, []string{"dev.yml", "shared.yml"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := buf.String(); got != "dev.yml\nshared.yml\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestTableFormatter_Scalar(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, "line1\nline2"); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "line1\\nline2\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestTableFormatter_Nil(t *testing.T) {
	var scalar bytes.Buffer
	if err := (&TableFormatter{}).Format(&scalar, nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := scalar.String(); got != "~\n" {
		t.Errorf("Format(nil) = %q, want %q", got, "~\n")
	}

	var table bytes.Buffer
	if err := (&TableFormatter{NoHeaders: true}).Format(&table, map[string]any{"key": nil}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := strings.TrimSpace(strings.TrimPrefix(table.String(), "key")); got != "~" {
		t.Errorf("map value for nil = %q, want %q", got, "~")
	}
}

func TestFormatNames(t *testing.T) {
	if got := FormatNames(","); got != "table,json,yaml" {
		t.Errorf("FormatNames() = %q", got)
	}

	_, err := NewFormatter("xml")
	if err == nil || !strings.Contains(err.Error(), "table, json, yaml") {
		t.Errorf("NewFormatter(xml) error = %v", err)
	}
}

func TestTable_Render(t *testing.T) {
	tbl := &Table{Headers: []string{"A", "B"}}
	tbl.AddRow("x", "yy")
	tbl.AddRow("long-value", "z")

	var buf bytes.Buffer
	if err := tbl.RenderWithOptions(&buf, false); err != nil {
		t.Fatalf("RenderWithOptions() error = %v", err)
	}

	want := "A           B\nx           yy\nlong-value  z\n"
	if got := buf.String(); got != want {
		t.Errorf("RenderWithOptions() = %q, want %q", got, want)
	}
}
