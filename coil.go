// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

// Wire values of a coil.
const (
	coilOff uint16 = 0x0000
	coilOn  uint16 = 0xFF00
)

// CoilState is the two-state value written to a single coil.
type CoilState bool

const (
	// CoilOff is encoded as 0x0000.
	CoilOff CoilState = false
	// CoilOn is encoded as 0xFF00.
	CoilOn CoilState = true
)

// CoilStateOf converts a bool.
func CoilStateOf(on bool) CoilState {
	return CoilState(on)
}

// ParseCoilState decodes a wire value. Only 0x0000 and 0xFF00 are accepted.
func ParseCoilState(v uint16) (CoilState, error) {
	switch v {
	case coilOff:
		return CoilOff, nil
	case coilOn:
		return CoilOn, nil
	}
	return CoilOff, errKind(KindInvalid)
}

// Uint16 returns the wire value of s.
func (s CoilState) Uint16() uint16 {
	if s {
		return coilOn
	}
	return coilOff
}

// Bool reports whether s is on.
func (s CoilState) Bool() bool {
	return bool(s)
}

// Not returns the opposite state.
func (s CoilState) Not() CoilState {
	return !s
}

func (s CoilState) String() string {
	if s {
		return "on"
	}
	return "off"
}
