package confloader

import (
	"os"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// DirLister enumerates the entries directly inside a directory. The order
// of the returned entries is the order in which files are merged.
type DirLister interface {
	List(dir string) ([]Entry, error)
}

// ListerFunc adapts a plain function to DirLister.
type ListerFunc func(dir string) ([]Entry, error)

// List calls f(dir).
func (f ListerFunc) List(dir string) ([]Entry, error) {
	return f(dir)
}

// OSLister lists directories on the local filesystem, sorted by name.
type OSLister struct{}

// List implements DirLister.
func (OSLister) List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		entries = append(entries, Entry{Name: de.Name(), IsDir: de.IsDir()})
	}
	return entries, nil
}
