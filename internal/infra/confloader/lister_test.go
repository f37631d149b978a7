package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSLister_List(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yml", "a.yml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := OSLister{}.List(dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []Entry{
		{Name: "a.yml"},
		{Name: "b.yml"},
		{Name: "notes.txt"},
		{Name: "sub", IsDir: true},
	}
	if len(entries) != len(want) {
		t.Fatalf("List() = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestOSLister_List_Missing(t *testing.T) {
	if _, err := (OSLister{}).List("/nonexistent/envconf-dir"); err == nil {
		t.Error("List() should fail for a missing directory")
	}
}

func TestMapProvider(t *testing.T) {
	p := mapProvider{"a": 1}
	if _, err := p.ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}

	m, err := p.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	m["b"] = 2
	if _, ok := p["b"]; ok {
		t.Error("Read() should return a copy")
	}
}
