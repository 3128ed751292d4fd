// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Amount uint64
	Owner  Address
	Flag   bool
	Data   []byte
}

func TestSerializationRawBytes(t *testing.T) {
	require := require.New(t)
	testBytes := RawBytes([]byte{0, 1, 2, 3})
	serializedBytes, err := Serialize(testBytes)
	require.NoError(err)
	require.Equal(([]byte)(testBytes), serializedBytes)

	deserialized, err := Deserialize[RawBytes](serializedBytes)
	require.NoError(err)
	require.Equal(testBytes, *deserialized)
}

func TestSerializationStruct(t *testing.T) {
	require := require.New(t)
	record := testRecord{
		Amount: 0x0102,
		Owner:  Address{1},
		Flag:   true,
		Data:   []byte{9, 9},
	}
	b, err := Serialize(record)
	require.NoError(err)
	// u64 + 32 + bool + u32 length + data
	require.Len(b, 8+32+1+4+2)
	require.Equal([]byte{0x02, 0x01, 0, 0, 0, 0, 0, 0}, b[:8])

	decoded, err := Deserialize[testRecord](b)
	require.NoError(err)
	require.Equal(record, *decoded)
}

func TestSerializationNil(t *testing.T) {
	require := require.New(t)
	var raw RawBytes
	b, err := Serialize(raw)
	require.NoError(err)
	require.Empty(b)
}
