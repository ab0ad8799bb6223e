//go:build unix

package strbuf

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile pushes written data to disk. Fsync rather than fdatasync: a
// fresh file's size change must reach the inode too.
func syncFile(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}
