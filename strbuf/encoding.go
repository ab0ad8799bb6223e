package strbuf

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Charmap interop: buffers frequently carry single-byte-encoded text
// (Latin-1, Windows-1252) produced by C code. These helpers move such
// payloads to and from UTF-8 Go strings without the caller touching the
// encoding machinery.

// DecodeCharmap interprets the payload in the given character map and
// returns it as a UTF-8 string.
func (b *Buffer) DecodeCharmap(cm *charmap.Charmap) (string, error) {
	decoded, err := cm.NewDecoder().Bytes(b.Bytes())
	if err != nil {
		return "", fmt.Errorf("strbuf: decode charmap: %w", err)
	}
	return string(decoded), nil
}

// AppendCharmap encodes the UTF-8 string s into the given character map
// and appends the resulting bytes. Runes absent from the map make the
// encode fail with the buffer unmodified.
func (b *Buffer) AppendCharmap(s string, cm *charmap.Charmap) error {
	encoded, err := cm.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return fmt.Errorf("strbuf: encode charmap: %w", err)
	}
	return b.Append(encoded)
}
