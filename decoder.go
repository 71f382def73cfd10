// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

// logger is the interface to the required logging functions
type logger interface {
	Printf(format string, v ...interface{})
}

// Decoder dispatches PDUs to the request decoders by function code.
// The zero value is ready to use.
type Decoder struct {
	// Decoding logger
	Logger logger
}

// Decode decodes a PDU starting with its function code.
func Decode(data []byte) (Request, []byte, error) {
	var d Decoder
	return d.Decode(data)
}

// DecodeProtocolDataUnit decodes the request carried by pdu. Bytes of
// pdu.Data following the request are returned as tail.
func DecodeProtocolDataUnit(pdu *ProtocolDataUnit) (Request, []byte, error) {
	var d Decoder
	return d.DecodeBody(FunctionCode(pdu.FunctionCode), pdu.Data)
}

// Decode reads the function code from data and decodes the request
// following it. Empty data fails with KindUnexpectedEOF.
func (d *Decoder) Decode(data []byte) (Request, []byte, error) {
	fc, body, ok := ReadFunctionCode(data)
	if !ok {
		return nil, data, errUnexpectedEOF(1, 0)
	}
	req, tail, err := d.DecodeBody(fc, body)
	if err != nil {
		return nil, data, err
	}
	return req, tail, nil
}

// DecodeBody decodes the request body for fc. Function codes without a
// request layout fail with *UnsupportedFunctionError.
func (d *Decoder) DecodeBody(fc FunctionCode, body []byte) (req Request, tail []byte, err error) {
	d.logf("modbus: decode function '%v' (%s) % x", byte(fc), fc, body)
	switch {
	case IsReadFunction(fc):
		var r ReadRequest
		r, tail, err = DecodeReadRequest(fc, body)
		req = r
	case fc == FuncCodeWriteSingleCoil:
		var r WriteSingleCoil
		r, tail, err = DecodeWriteSingleCoil(body)
		req = r
	case fc == FuncCodeWriteSingleRegister:
		var r WriteSingleRegister
		r, tail, err = DecodeWriteSingleRegister(body)
		req = r
	case fc == FuncCodeWriteMultipleRegisters:
		var r WriteMultipleRegisters
		r, tail, err = DecodeWriteMultipleRegisters(body)
		req = r
	default:
		err = &UnsupportedFunctionError{FunctionCode: fc}
	}
	if err != nil {
		d.logf("modbus: decode failed: %v", err)
		return nil, body, err
	}
	d.logf("modbus: decoded %T, %d trailing bytes", req, len(tail))
	return req, tail, nil
}

func (d *Decoder) logf(format string, v ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, v...)
	}
}
