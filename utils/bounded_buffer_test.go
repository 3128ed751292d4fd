// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundedBuffer(t *testing.T) {
	require := require.New(t)

	var evicted []int
	b, err := NewBoundedBuffer(3, func(i int) {
		evicted = append(evicted, i)
	})
	require.NoError(err)

	_, ok := b.Last()
	require.False(ok)

	for i := 1; i <= 5; i++ {
		b.Insert(i)
	}
	require.Equal([]int{3, 4, 5}, b.Items())
	require.Equal([]int{1, 2}, evicted)

	last, ok := b.Last()
	require.True(ok)
	require.Equal(5, last)

	require.True(b.Contains(3))
	require.False(b.Contains(2))
}

func TestBoundedBufferInvalidSize(t *testing.T) {
	_, err := NewBoundedBuffer[int](0, nil)
	require.ErrorIs(t, err, errInvalidMaxSize)
}
