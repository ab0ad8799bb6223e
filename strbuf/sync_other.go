//go:build !unix

package strbuf

import "os"

// syncFile pushes written data to disk via the portable file sync.
func syncFile(f *os.File) error {
	return f.Sync()
}
