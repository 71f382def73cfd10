// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

import (
	"bytes"
	"encoding/binary"
)

// Registers is a read-only view of big-endian 16-bit registers backed by a
// byte slice of even length. Words are decoded on access; the backing
// slice is never copied and must not be modified while the view is in use.
type Registers struct {
	b []byte
}

// NewRegisters wraps b. It fails with KindInvalid if len(b) is odd.
func NewRegisters(b []byte) (Registers, error) {
	if len(b)%2 != 0 {
		return Registers{}, errKind(KindInvalid)
	}
	return Registers{b: b}, nil
}

// RegistersOf encodes values into a new buffer and returns a view of it.
func RegistersOf(values ...uint16) Registers {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint16(b[i*2:], v)
	}
	return Registers{b: b}
}

// Len returns the number of registers.
func (r Registers) Len() int {
	return len(r.b) / 2
}

// ByteLen returns the number of bytes.
func (r Registers) ByteLen() int {
	return len(r.b)
}

// Bytes returns the backing bytes.
func (r Registers) Bytes() []byte {
	return r.b
}

// Get returns register i. ok is false if i is out of range.
func (r Registers) Get(i int) (v uint16, ok bool) {
	if i < 0 || i >= r.Len() {
		return 0, false
	}
	return r.At(i), true
}

// At returns register i. The caller must ensure 0 <= i < r.Len(); At
// panics otherwise.
func (r Registers) At(i int) uint16 {
	return binary.BigEndian.Uint16(r.b[i*2:])
}

// AppendValues appends all registers to dst.
func (r Registers) AppendValues(dst []uint16) []uint16 {
	for i := 0; i < r.Len(); i++ {
		dst = append(dst, r.At(i))
	}
	return dst
}

// Equal reports whether r and o hold the same register values.
func (r Registers) Equal(o Registers) bool {
	return bytes.Equal(r.b, o.b)
}
