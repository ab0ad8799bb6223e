package strbuf

import (
	"fmt"

	"github.com/strkit/strkit/internal/numtext"
)

// Quick-format: a constrained template expander that computes the exact
// output size before writing a single byte. Two passes walk one parsed
// directive sequence — never two hand-written template walks — so the
// sizing and writing passes cannot drift apart on directive
// interpretation or argument order.

// quickVerb identifies a template directive.
type quickVerb uint8

const (
	quickLit    quickVerb = iota // literal template bytes
	quickStr                     // %s: string or []byte
	quickBuf                     // %S: *Buffer, length read from the descriptor
	quickInt                     // %i: int or int32
	quickInt64                   // %I: int64
	quickUint                    // %u: uint or uint32
	quickUint64                  // %U: uint64
	quickChar                    // %c: byte
)

// quickSeg is one parsed template element: either a literal run or a
// directive that consumes one argument.
type quickSeg struct {
	verb quickVerb
	lit  string
}

// parseQuick splits a template into literal runs and directives. %% and
// unrecognized %x sequences become literal segments ('%' and 'x'
// respectively); a trailing lone '%' is kept literally. Literal segments
// are substrings of the template, so parsing does not allocate byte
// storage.
func parseQuick(template string) []quickSeg {
	var segs []quickSeg
	lit := 0 // start of the current literal run
	i := 0
	for i < len(template) {
		if template[i] != '%' {
			i++
			continue
		}
		if lit < i {
			segs = append(segs, quickSeg{verb: quickLit, lit: template[lit:i]})
		}
		if i+1 == len(template) {
			// Trailing lone '%'.
			segs = append(segs, quickSeg{verb: quickLit, lit: template[i:]})
			i++
			lit = i
			continue
		}
		switch c := template[i+1]; c {
		case 's':
			segs = append(segs, quickSeg{verb: quickStr})
		case 'S':
			segs = append(segs, quickSeg{verb: quickBuf})
		case 'i':
			segs = append(segs, quickSeg{verb: quickInt})
		case 'I':
			segs = append(segs, quickSeg{verb: quickInt64})
		case 'u':
			segs = append(segs, quickSeg{verb: quickUint})
		case 'U':
			segs = append(segs, quickSeg{verb: quickUint64})
		case 'c':
			segs = append(segs, quickSeg{verb: quickChar})
		default:
			// %% emits '%'; any other %x passes x through literally.
			segs = append(segs, quickSeg{verb: quickLit, lit: template[i+1 : i+2]})
		}
		i += 2
		lit = i
	}
	if lit < len(template) {
		segs = append(segs, quickSeg{verb: quickLit, lit: template[lit:]})
	}
	return segs
}

// quickArg resolves one directive argument to the canonical width-64 value
// used by both passes.
func quickArg(sg quickSeg, arg any) (size int, i64 int64, u64 uint64, err error) {
	switch sg.verb {
	case quickStr:
		switch v := arg.(type) {
		case string:
			return len(v), 0, 0, nil
		case []byte:
			return len(v), 0, 0, nil
		}
	case quickBuf:
		if v, ok := arg.(*Buffer); ok {
			return v.Len(), 0, 0, nil
		}
	case quickInt:
		switch v := arg.(type) {
		case int:
			return numtext.IntLen(int64(v)), int64(v), 0, nil
		case int32:
			return numtext.IntLen(int64(v)), int64(v), 0, nil
		}
	case quickInt64:
		if v, ok := arg.(int64); ok {
			return numtext.IntLen(v), v, 0, nil
		}
	case quickUint:
		switch v := arg.(type) {
		case uint:
			return numtext.UintLen(uint64(v)), 0, uint64(v), nil
		case uint32:
			return numtext.UintLen(uint64(v)), 0, uint64(v), nil
		}
	case quickUint64:
		if v, ok := arg.(uint64); ok {
			return numtext.UintLen(v), 0, v, nil
		}
	case quickChar:
		if _, ok := arg.(byte); ok {
			return 1, 0, 0, nil
		}
	}
	return 0, 0, 0, fmt.Errorf("%w: %%%s got %T", ErrFormatArg, quickVerbName(sg.verb), arg)
}

func quickVerbName(v quickVerb) string {
	switch v {
	case quickStr:
		return "s"
	case quickBuf:
		return "S"
	case quickInt:
		return "i"
	case quickInt64:
		return "I"
	case quickUint:
		return "u"
	case quickUint64:
		return "U"
	case quickChar:
		return "c"
	}
	return "?"
}

// Quickf appends the expansion of a quick-format template.
//
// Directives: %s (string or []byte), %S (*Buffer, O(1) length), %i
// (int/int32), %I (int64), %u (uint/uint32), %U (uint64), %c (byte), %%
// (literal percent). Any other %x passes x through literally.
//
// The sizing pass computes the exact output size, capacity is ensured
// once, and the writing pass emits straight into the reserved region; no
// staging buffer, no growth mid-write. Argument arity and type problems
// are caught during sizing and reported via ErrFormatArg with the buffer
// unmodified.
func (b *Buffer) Quickf(template string, args ...any) error {
	segs := parseQuick(template)

	// Sizing pass.
	size := 0
	ai := 0
	for _, sg := range segs {
		if sg.verb == quickLit {
			size += len(sg.lit)
			continue
		}
		if ai >= len(args) {
			return fmt.Errorf("%w: template needs more than %d args", ErrFormatArg, len(args))
		}
		n, _, _, err := quickArg(sg, args[ai])
		if err != nil {
			return err
		}
		size += n
		ai++
	}

	if err := b.Ensure(b.length + size + 1); err != nil {
		return err
	}

	// Writing pass: same directive sequence, its own argument cursor.
	w := b.length
	ai = 0
	for _, sg := range segs {
		if sg.verb == quickLit {
			w += copy(b.data[w:], sg.lit)
			continue
		}
		arg := args[ai]
		ai++
		switch sg.verb {
		case quickStr:
			switch v := arg.(type) {
			case string:
				w += copy(b.data[w:], v)
			case []byte:
				w += copy(b.data[w:], v)
			}
		case quickBuf:
			w += copy(b.data[w:], arg.(*Buffer).Bytes())
		case quickInt, quickInt64:
			_, i64, _, _ := quickArg(sg, arg)
			w += numtext.PutInt(b.data[w:], i64)
		case quickUint, quickUint64:
			_, _, u64, _ := quickArg(sg, arg)
			w += numtext.PutUint(b.data[w:], u64)
		case quickChar:
			b.data[w] = arg.(byte)
			w++
		}
	}

	b.length = w
	b.data[b.length] = 0
	return nil
}

// Appendf appends fmt-formatted output, sized by the host formatter. It is
// the general-purpose sibling of Quickf for formatting the directive set
// does not cover.
func (b *Buffer) Appendf(format string, args ...any) error {
	out := fmt.Appendf(nil, format, args...)
	return b.Append(out)
}
