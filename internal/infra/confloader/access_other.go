//go:build !unix

package confloader

import (
	"errors"
	"os"
)

var errPermission = errors.New("permission denied")

// checkAccess falls back to the owner permission bits where access(2)
// is unavailable.
func checkAccess(path string, mode accessMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	perm := info.Mode().Perm()
	if mode&accessRead != 0 && perm&0o400 == 0 {
		return errPermission
	}
	if mode&accessWrite != 0 && perm&0o200 == 0 {
		return errPermission
	}
	return nil
}
