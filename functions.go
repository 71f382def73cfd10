// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

// FunctionCode is the first byte of every PDU.
type FunctionCode byte

// Public function codes. FuncCodeInvalid is never sent on the wire but is
// classified as public.
const (
	FuncCodeInvalid                        FunctionCode = 0
	FuncCodeReadCoils                      FunctionCode = 1
	FuncCodeReadDiscreteInputs             FunctionCode = 2
	FuncCodeReadHoldingRegisters           FunctionCode = 3
	FuncCodeReadInputRegisters             FunctionCode = 4
	FuncCodeWriteSingleCoil                FunctionCode = 5
	FuncCodeWriteSingleRegister            FunctionCode = 6
	FuncCodeReadExceptionStatus            FunctionCode = 7
	FuncCodeDiagnostics                    FunctionCode = 8
	FuncCodeProgram484                     FunctionCode = 9
	FuncCodePoll484                        FunctionCode = 10
	FuncCodeGetCommEventCounter            FunctionCode = 11
	FuncCodeGetCommEventLog                FunctionCode = 12
	FuncCodeProgramController              FunctionCode = 13
	FuncCodePollController                 FunctionCode = 14
	FuncCodeWriteMultipleCoils             FunctionCode = 15
	FuncCodeWriteMultipleRegisters         FunctionCode = 16
	FuncCodeReportServerID                 FunctionCode = 17
	FuncCodeProgram884M84                  FunctionCode = 18
	FuncCodeResetCommLink                  FunctionCode = 19
	FuncCodeReadFileRecord                 FunctionCode = 20
	FuncCodeWriteFileRecord                FunctionCode = 21
	FuncCodeMaskWriteRegister              FunctionCode = 22
	FuncCodeReadWriteMultipleRegisters     FunctionCode = 23
	FuncCodeReadFIFOQueue                  FunctionCode = 24
	FuncCodeEncapsulatedInterfaceTransport FunctionCode = 43
)

// Ranges reserved for user defined function codes.
const (
	customRange1Start FunctionCode = 65
	customRange1End   FunctionCode = 72
	customRange2Start FunctionCode = 100
	customRange2End   FunctionCode = 110

	exceptionBit FunctionCode = 0x80
)

// Class partitions the 256 function code values.
type Class uint8

const (
	// ClassPublic covers 0..24 and 43.
	ClassPublic Class = iota + 1
	// ClassCustom covers 65..72 and 100..110.
	ClassCustom
	// ClassOther is everything else.
	ClassOther
)

func (c Class) String() string {
	switch c {
	case ClassPublic:
		return "public"
	case ClassCustom:
		return "custom"
	case ClassOther:
		return "other"
	}
	return "unknown"
}

var publicNames = map[FunctionCode]string{
	FuncCodeInvalid:                        "invalid",
	FuncCodeReadCoils:                      "read coils",
	FuncCodeReadDiscreteInputs:             "read discrete inputs",
	FuncCodeReadHoldingRegisters:           "read holding registers",
	FuncCodeReadInputRegisters:             "read input registers",
	FuncCodeWriteSingleCoil:                "write single coil",
	FuncCodeWriteSingleRegister:            "write single register",
	FuncCodeReadExceptionStatus:            "read exception status",
	FuncCodeDiagnostics:                    "diagnostics",
	FuncCodeProgram484:                     "program 484",
	FuncCodePoll484:                        "poll 484",
	FuncCodeGetCommEventCounter:            "get comm event counter",
	FuncCodeGetCommEventLog:                "get comm event log",
	FuncCodeProgramController:              "program controller",
	FuncCodePollController:                 "poll controller",
	FuncCodeWriteMultipleCoils:             "write multiple coils",
	FuncCodeWriteMultipleRegisters:         "write multiple registers",
	FuncCodeReportServerID:                 "report server ID",
	FuncCodeProgram884M84:                  "program 884/M84",
	FuncCodeResetCommLink:                  "reset comm link",
	FuncCodeReadFileRecord:                 "read file record",
	FuncCodeWriteFileRecord:                "write file record",
	FuncCodeMaskWriteRegister:              "mask write register",
	FuncCodeReadWriteMultipleRegisters:     "read/write multiple registers",
	FuncCodeReadFIFOQueue:                  "read FIFO queue",
	FuncCodeEncapsulatedInterfaceTransport: "encapsulated interface transport",
}

// Classify maps any byte to exactly one Class. Zero is the public
// FuncCodeInvalid.
func Classify(b byte) Class {
	fc := FunctionCode(b)
	switch {
	case fc.IsCustom():
		return ClassCustom
	case fc.IsPublic():
		return ClassPublic
	}
	return ClassOther
}

// Class returns the class of fc.
func (fc FunctionCode) Class() Class {
	return Classify(byte(fc))
}

// IsPublic reports whether fc is a publicly documented function code,
// including FuncCodeInvalid.
func (fc FunctionCode) IsPublic() bool {
	return fc <= FuncCodeReadFIFOQueue || fc == FuncCodeEncapsulatedInterfaceTransport
}

// IsCustom reports whether fc lies in one of the user defined ranges.
func (fc FunctionCode) IsCustom() bool {
	return (fc >= customRange1Start && fc <= customRange1End) ||
		(fc >= customRange2Start && fc <= customRange2End)
}

// IsOther reports whether fc is neither public nor custom.
func (fc FunctionCode) IsOther() bool {
	return !fc.IsPublic() && !fc.IsCustom()
}

// IsValid is false only for FuncCodeInvalid.
func (fc FunctionCode) IsValid() bool {
	return fc != FuncCodeInvalid
}

// IsException reports whether the exception bit is set, as in responses
// reporting a failed request.
func (fc FunctionCode) IsException() bool {
	return fc&exceptionBit != 0
}

func (fc FunctionCode) String() string {
	if name, ok := publicNames[fc]; ok {
		return name
	}
	if fc.IsCustom() {
		return "custom"
	}
	return "other"
}

// ReadFunctionCode returns the leading byte of data as a function code and
// the remaining bytes. ok is false if data is empty.
func ReadFunctionCode(data []byte) (fc FunctionCode, tail []byte, ok bool) {
	if len(data) == 0 {
		return 0, nil, false
	}
	return FunctionCode(data[0]), data[1:], true
}
