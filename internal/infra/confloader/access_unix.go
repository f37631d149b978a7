//go:build unix

package confloader

import "golang.org/x/sys/unix"

// checkAccess reports whether the process may access path with mode,
// using the real uid/gid like access(2).
func checkAccess(path string, mode accessMode) error {
	var m uint32
	if mode&accessRead != 0 {
		m |= unix.R_OK
	}
	if mode&accessWrite != 0 {
		m |= unix.W_OK
	}
	return unix.Access(path, m)
}
