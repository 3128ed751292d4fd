// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"fmt"
)

var ErrOversized = errors.New("packer exceeded size limit")

// Packer reads and writes the ledger wire format: raw fixed-width fields
// and compact-u16 length prefixes. The first error is sticky; every later
// call is a no-op and [Err] reports it.
type Packer struct {
	b      []byte
	offset int
	limit  int
	err    error
}

// NewWriter returns a Packer that writes at most [limit] bytes.
func NewWriter(initial, limit int) *Packer {
	return &Packer{
		b:     make([]byte, 0, initial),
		limit: limit,
	}
}

// NewReader returns a Packer that consumes [src], which may not be larger
// than [limit].
func NewReader(src []byte, limit int) *Packer {
	p := &Packer{b: src, limit: limit}
	if len(src) > limit {
		p.addErr(fmt.Errorf("%w: %d > %d", ErrOversized, len(src), limit))
	}
	return p
}

func (p *Packer) grow(n int) bool {
	if p.err != nil {
		return false
	}
	if len(p.b)+n > p.limit {
		p.addErr(fmt.Errorf("%w: %d > %d", ErrOversized, len(p.b)+n, p.limit))
		return false
	}
	return true
}

func (p *Packer) take(n int) []byte {
	if p.err != nil {
		return nil
	}
	if n < 0 || p.offset+n > len(p.b) {
		p.addErr(ErrInsufficientLength)
		return nil
	}
	v := p.b[p.offset : p.offset+n]
	p.offset += n
	return v
}

func (p *Packer) PackByte(b byte) {
	if !p.grow(1) {
		return
	}
	p.b = append(p.b, b)
}

func (p *Packer) UnpackByte() byte {
	v := p.take(1)
	if v == nil {
		return 0
	}
	return v[0]
}

func (p *Packer) PackFixedBytes(b []byte) {
	if !p.grow(len(b)) {
		return
	}
	p.b = append(p.b, b...)
}

// UnpackFixedBytes copies the next len(dest) bytes into [dest].
func (p *Packer) UnpackFixedBytes(dest []byte) {
	v := p.take(len(dest))
	if v == nil {
		return
	}
	copy(dest, v)
}

func (p *Packer) PackShortVec(n int) {
	if p.err != nil {
		return
	}
	b, err := AppendShortVec(nil, n)
	if err != nil {
		p.addErr(err)
		return
	}
	p.PackFixedBytes(b)
}

func (p *Packer) UnpackShortVec() int {
	if p.err != nil {
		return 0
	}
	n, read, err := ReadShortVec(p.b[p.offset:])
	if err != nil {
		p.addErr(err)
		return 0
	}
	p.offset += read
	return n
}

// PackBytes writes [b] prefixed with its compact-u16 length.
func (p *Packer) PackBytes(b []byte) {
	p.PackShortVec(len(b))
	p.PackFixedBytes(b)
}

func (p *Packer) UnpackBytes() []byte {
	n := p.UnpackShortVec()
	v := p.take(n)
	if v == nil {
		return nil
	}
	return append([]byte{}, v...)
}

func (p *Packer) PackAddress(a Address) {
	p.PackFixedBytes(a[:])
}

func (p *Packer) UnpackAddress(dest *Address) {
	p.UnpackFixedBytes(dest[:])
}

func (p *Packer) PackHash(h Hash) {
	p.PackFixedBytes(h[:])
}

func (p *Packer) UnpackHash(dest *Hash) {
	p.UnpackFixedBytes(dest[:])
}

func (p *Packer) Bytes() []byte {
	return p.b
}

func (p *Packer) Offset() int {
	return p.offset
}

// Empty reports whether every byte of a reader has been consumed.
func (p *Packer) Empty() bool {
	return p.offset == len(p.b)
}

func (p *Packer) Err() error {
	return p.err
}

func (p *Packer) addErr(err error) {
	if p.err == nil {
		p.err = err
	}
}
