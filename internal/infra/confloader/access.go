package confloader

import (
	"os"

	"github.com/yndnr/envconf-go/internal/core/domain"
)

type accessMode uint8

const (
	accessRead accessMode = 1 << iota
	accessWrite
)

// validateDirectory checks that dir exists, is a directory and is writable.
// It runs on every directory access; the result is never cached.
func validateDirectory(dir string) error {
	if dir == "" {
		return domain.ErrInvalidDirectory.WithDetails("no directory set")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return domain.ErrInvalidDirectory.WithDetails(dir).Wrap(err)
	}
	if !info.IsDir() {
		return domain.ErrInvalidDirectory.WithDetailsf("%s is not a directory", dir)
	}
	if err := checkAccess(dir, accessWrite); err != nil {
		return domain.ErrInvalidDirectory.WithDetails(dir).Wrap(err)
	}
	return nil
}

// accessibleFile reports whether path is a regular file the process can
// both read and write.
func accessibleFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return checkAccess(path, accessRead|accessWrite) == nil
}
