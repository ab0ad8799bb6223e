// Package numtext converts integers to decimal text with exact-width
// accounting. The length helpers report precisely how many bytes the
// matching Put helper will write, which lets callers reserve output space
// once and then emit without intermediate buffers.
package numtext

// UintLen returns the number of decimal digits in v.
func UintLen(v uint64) int {
	n := 0
	for {
		v /= 10
		n++
		if v == 0 {
			return n
		}
	}
}

// IntLen returns the number of bytes PutInt writes for v, including the
// leading minus sign for negative values.
func IntLen(v int64) int {
	if v < 0 {
		return UintLen(negAbs(v)) + 1
	}
	return UintLen(uint64(v))
}

// PutUint writes v in decimal at the start of dst and returns the byte
// count. dst must hold at least UintLen(v) bytes. Digits are emitted least
// significant first and reversed in place, so no scratch storage is needed.
func PutUint(dst []byte, v uint64) int {
	i := 0
	for {
		dst[i] = byte(v%10) + '0'
		i++
		v /= 10
		if v == 0 {
			break
		}
	}
	for l, r := 0, i-1; l < r; l, r = l+1, r-1 {
		dst[l], dst[r] = dst[r], dst[l]
	}
	return i
}

// PutInt writes v in decimal at the start of dst and returns the byte
// count. dst must hold at least IntLen(v) bytes.
func PutInt(dst []byte, v int64) int {
	if v < 0 {
		dst[0] = '-'
		return PutUint(dst[1:], negAbs(v)) + 1
	}
	return PutUint(dst, uint64(v))
}

// negAbs returns |v| for negative v without overflowing on MinInt64.
func negAbs(v int64) uint64 {
	return uint64(0) - uint64(v)
}
