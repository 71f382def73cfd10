// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

import "encoding/binary"

const (
	uint16Size       = 2
	addrQuantitySize = 4
	// fixedBodySize is the body of every request with two 16-bit fields.
	fixedBodySize = 4
	// fixedSize includes the function code.
	fixedSize = 1 + fixedBodySize
)

// ReadUint16 decodes a big-endian word from the front of data and returns
// the remaining bytes.
func ReadUint16(data []byte) (v uint16, tail []byte, err error) {
	if len(data) < uint16Size {
		return 0, data, errUnexpectedEOF(uint16Size, len(data))
	}
	return binary.BigEndian.Uint16(data), data[uint16Size:], nil
}

// PutUint16 encodes v big-endian into the first two bytes of dst.
func PutUint16(dst []byte, v uint16) error {
	if len(dst) < uint16Size {
		return errInsufficientBuffer(uint16Size, len(dst))
	}
	binary.BigEndian.PutUint16(dst, v)
	return nil
}

// AddrQuantity is the starting address and count prefix shared by most
// requests. The single write requests carry their value in place of the
// quantity:
//
//	Starting address : 2 bytes
//	Quantity         : 2 bytes
type AddrQuantity struct {
	Address  uint16
	Quantity uint16
}

// ReadAddrQuantity decodes an AddrQuantity from the front of data.
func ReadAddrQuantity(data []byte) (aq AddrQuantity, tail []byte, err error) {
	if len(data) < addrQuantitySize {
		return AddrQuantity{}, data, errUnexpectedEOF(addrQuantitySize, len(data))
	}
	// length checked above
	aq.Address, tail, _ = ReadUint16(data)
	aq.Quantity, tail, _ = ReadUint16(tail)
	return aq, tail, nil
}

// Encode writes aq into dst and returns the number of bytes written.
func (aq AddrQuantity) Encode(dst []byte) (int, error) {
	if len(dst) < addrQuantitySize {
		return 0, errInsufficientBuffer(addrQuantitySize, len(dst))
	}
	_ = PutUint16(dst, aq.Address)
	_ = PutUint16(dst[uint16Size:], aq.Quantity)
	return addrQuantitySize, nil
}

// encodeFixed writes a fixed size request:
//
//	Function code : 1 byte
//	AddrQuantity  : 4 bytes
func encodeFixed(dst []byte, fc FunctionCode, aq AddrQuantity) (int, error) {
	if len(dst) < fixedSize {
		return 0, errInsufficientBuffer(fixedSize, len(dst))
	}
	dst[0] = byte(fc)
	if _, err := aq.Encode(dst[1:]); err != nil {
		return 0, err
	}
	return fixedSize, nil
}

// fixedBody returns the body of a fixed size request without function code.
func fixedBody(aq AddrQuantity) (body [fixedBodySize]byte) {
	_, _ = aq.Encode(body[:])
	return
}
