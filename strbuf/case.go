package strbuf

// Case mapping is byte-locale: only ASCII letters change, matching the "C"
// locale of the byte strings this package interoperates with. Payloads
// carrying non-ASCII text should go through the charmap helpers instead.

// Capitalize upper-cases the first payload byte.
func (b *Buffer) Capitalize() {
	if b.length > 0 {
		b.data[0] = asciiUpper(b.data[0])
	}
}

// ToUpper upper-cases every payload byte.
func (b *Buffer) ToUpper() {
	for i := 0; i < b.length; i++ {
		b.data[i] = asciiUpper(b.data[i])
	}
}

// ToLower lower-cases every payload byte.
func (b *Buffer) ToLower() {
	for i := 0; i < b.length; i++ {
		b.data[i] = asciiLower(b.data[i])
	}
}

func asciiUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
