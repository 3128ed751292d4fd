// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "github.com/URvesh109/example-counter/consts"

// maxShortVecLen is the longest compact-u16 encoding (3 bytes).
const maxShortVecLen = 3

// AppendShortVec appends the compact-u16 encoding of [n] to [b]. Seven bits
// are stored per byte, low bits first, with the high bit set on every byte
// but the last.
func AppendShortVec(b []byte, n int) ([]byte, error) {
	if n < 0 || n > int(consts.MaxUint16) {
		return nil, ErrShortVecOverflow
	}
	rem := uint16(n)
	for {
		elem := byte(rem & 0x7f)
		rem >>= 7
		if rem == 0 {
			return append(b, elem), nil
		}
		b = append(b, elem|0x80)
	}
}

// ReadShortVec decodes a compact-u16 from the front of [b] and returns the
// value and the number of bytes consumed.
func ReadShortVec(b []byte) (int, int, error) {
	var n int
	for i := 0; i < maxShortVecLen; i++ {
		if i >= len(b) {
			return 0, 0, ErrInsufficientLength
		}
		elem := int(b[i])
		n |= (elem & 0x7f) << (7 * i)
		if elem&0x80 == 0 {
			if n > int(consts.MaxUint16) {
				return 0, 0, ErrShortVecOverflow
			}
			return n, i + 1, nil
		}
	}
	return 0, 0, ErrShortVecTooLong
}
