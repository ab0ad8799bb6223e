package strbuf

// Path-name edits over '/'-separated payloads. These are thin splices on
// top of the scan primitives; the edge cases ("." for a bare name, "/" for
// a root child) follow classic dirname/basename behavior.

// Dirname replaces the payload with its directory part. A payload without
// any '/' becomes "."; a root-level path keeps the leading "/".
func (b *Buffer) Dirname() error {
	i := b.length
	for i > 0 && b.data[i] != '/' {
		i--
	}
	if i > 0 {
		b.TruncateTo(i)
		return nil
	}
	if b.length > 0 && b.data[0] == '/' {
		b.TruncateTo(1)
		return nil
	}
	return b.SetString(".")
}

// Basename replaces the payload with its final path element. A payload
// without any '/' is left unchanged; a trailing '/' leaves an empty
// payload.
func (b *Buffer) Basename() {
	if b.length == 0 {
		return
	}
	i := b.length
	for i > 0 && b.data[i] != '/' {
		i--
	}
	if i == 0 && b.data[0] != '/' {
		return
	}
	b.Trim(-(i + 1))
}

// TrimExt truncates the payload at the first occurrence of ext, dropping
// the extension and everything after it. It reports whether ext was found.
func (b *Buffer) TrimExt(ext string) bool {
	idx := b.IndexOfString(ext)
	if idx < 0 {
		return false
	}
	b.TruncateTo(idx)
	return true
}
