// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortVec(t *testing.T) {
	tests := []struct {
		n       int
		encoded []byte
	}{
		{n: 0, encoded: []byte{0x00}},
		{n: 1, encoded: []byte{0x01}},
		{n: 0x7f, encoded: []byte{0x7f}},
		{n: 0x80, encoded: []byte{0x80, 0x01}},
		{n: 0xff, encoded: []byte{0xff, 0x01}},
		{n: 0x3fff, encoded: []byte{0xff, 0x7f}},
		{n: 0x4000, encoded: []byte{0x80, 0x80, 0x01}},
		{n: 0xffff, encoded: []byte{0xff, 0xff, 0x03}},
	}
	for _, tt := range tests {
		require := require.New(t)
		b, err := AppendShortVec(nil, tt.n)
		require.NoError(err)
		require.Equal(tt.encoded, b)

		n, read, err := ReadShortVec(append(b, 0xaa))
		require.NoError(err)
		require.Equal(tt.n, n)
		require.Equal(len(tt.encoded), read)
	}
}

func TestShortVecErrors(t *testing.T) {
	require := require.New(t)

	_, err := AppendShortVec(nil, 0x10000)
	require.ErrorIs(err, ErrShortVecOverflow)
	_, err = AppendShortVec(nil, -1)
	require.ErrorIs(err, ErrShortVecOverflow)

	_, _, err = ReadShortVec([]byte{0x80})
	require.ErrorIs(err, ErrInsufficientLength)
	_, _, err = ReadShortVec([]byte{0x80, 0x80, 0x80, 0x01})
	require.ErrorIs(err, ErrShortVecTooLong)
	_, _, err = ReadShortVec([]byte{0xff, 0xff, 0x7f})
	require.ErrorIs(err, ErrShortVecOverflow)
}
