// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

// SlaveID addresses a device on a shared medium.
//
//	0        broadcast, every device must react
//	1..247   device
//	248..255 reserved, 0xFF is the default for TCP
type SlaveID byte

const (
	// BroadcastSlaveID addresses all devices.
	BroadcastSlaveID SlaveID = 0
	// DefaultTCPSlaveID is used by transports that route by connection.
	DefaultTCPSlaveID SlaveID = 0xFF

	firstReservedSlaveID SlaveID = 248
)

// IsBroadcast reports whether id is the broadcast address.
func (id SlaveID) IsBroadcast() bool {
	return id == BroadcastSlaveID
}

// IsReserved reports whether id lies in 248..255.
func (id SlaveID) IsReserved() bool {
	return id >= firstReservedSlaveID
}

// IsDevice reports whether id addresses a single device.
func (id SlaveID) IsDevice() bool {
	return !id.IsBroadcast() && !id.IsReserved()
}

// IsDefaultTCP reports whether id is 0xFF.
func (id SlaveID) IsDefaultTCP() bool {
	return id == DefaultTCPSlaveID
}

// MustReact reports whether a device with id has to process a request
// addressed to other.
func (id SlaveID) MustReact(other SlaveID) bool {
	return other.IsBroadcast() || id == other
}

// ReadSlaveID returns the leading byte of data as slave id and the
// remaining bytes. ok is false if data is empty.
func ReadSlaveID(data []byte) (id SlaveID, tail []byte, ok bool) {
	if len(data) == 0 {
		return 0, nil, false
	}
	return SlaveID(data[0]), data[1:], true
}
