// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

// WriteSingleCoil sets a single coil on or off.
//
//	Function code  : 1 byte (0x05)
//	Output address : 2 bytes
//	Output value   : 2 bytes (0x0000 or 0xFF00)
type WriteSingleCoil struct {
	Address uint16
	State   CoilState
}

// DecodeWriteSingleCoil decodes the body of a write single coil request.
// A value other than 0x0000 or 0xFF00 fails with KindInvalid.
func DecodeWriteSingleCoil(data []byte) (req WriteSingleCoil, tail []byte, err error) {
	aq, tail, err := ReadAddrQuantity(data)
	if err != nil {
		return WriteSingleCoil{}, data, err
	}
	state, err := ParseCoilState(aq.Quantity)
	if err != nil {
		return WriteSingleCoil{}, data, err
	}
	return WriteSingleCoil{Address: aq.Address, State: state}, tail, nil
}

// FunctionCode implements Request.
func (r WriteSingleCoil) FunctionCode() FunctionCode {
	return FuncCodeWriteSingleCoil
}

// Size implements Request.
func (r WriteSingleCoil) Size() int {
	return fixedSize
}

// Encode writes the request into dst.
func (r WriteSingleCoil) Encode(dst []byte) (int, error) {
	return encodeFixed(dst, FuncCodeWriteSingleCoil, AddrQuantity{r.Address, r.State.Uint16()})
}

// Body returns the encoded request without function code.
func (r WriteSingleCoil) Body() [4]byte {
	return fixedBody(AddrQuantity{r.Address, r.State.Uint16()})
}

// WriteSingleRegister writes a single holding register.
//
//	Function code    : 1 byte (0x06)
//	Register address : 2 bytes
//	Register value   : 2 bytes
type WriteSingleRegister struct {
	Address uint16
	Value   uint16
}

// DecodeWriteSingleRegister decodes the body of a write single register
// request.
func DecodeWriteSingleRegister(data []byte) (req WriteSingleRegister, tail []byte, err error) {
	aq, tail, err := ReadAddrQuantity(data)
	if err != nil {
		return WriteSingleRegister{}, data, err
	}
	return WriteSingleRegister{Address: aq.Address, Value: aq.Quantity}, tail, nil
}

// FunctionCode implements Request.
func (r WriteSingleRegister) FunctionCode() FunctionCode {
	return FuncCodeWriteSingleRegister
}

// Size implements Request.
func (r WriteSingleRegister) Size() int {
	return fixedSize
}

// Encode writes the request into dst.
func (r WriteSingleRegister) Encode(dst []byte) (int, error) {
	return encodeFixed(dst, FuncCodeWriteSingleRegister, AddrQuantity{r.Address, r.Value})
}

// Body returns the encoded request without function code.
func (r WriteSingleRegister) Body() [4]byte {
	return fixedBody(AddrQuantity{r.Address, r.Value})
}
