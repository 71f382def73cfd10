package main

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/grid-x/pdu"
)

func main() {
	var (
		decode          = flag.String("decode", "", "hex encoded PDU to decode, e.g. '10 00 01 00 02 04 00 0a 01 02'. Encodes a request from the flags below if empty")
		withSlave       = flag.Bool("slave", false, "the decoded frame starts with a slave id")
		slaveID         = flag.Int("slaveID", -1, "slave id to prefix the encoded PDU with, TCP default 0xFF. Not prefixed if negative")
		register        = flag.Int("register", -1, "")
		fnCode          = flag.Int("fn-code", 0x03, "fn")
		quantity        = flag.Int("quantity", 2, "register quantity, length in bytes")
		eType           = flag.String("type-exec", "uint16", "")
		pType           = flag.String("type-parse", "raw", "type to parse the written registers. Use 'raw' if you want to see the raw bits and bytes.")
		writeValue      = flag.Float64("write-value", math.MaxFloat64, "")
		readParseOrder  = flag.String("read-parse-order", "", "order to parse the decoded registers. Valid values: [AB, BA, ABCD, DCBA, BADC, CDAB]. Can only be used for 16bit (1 register) and 32bit (2 registers). If used, it will overwrite the big-endian or little-endian parameter.")
		writeParseOrder = flag.String("write-exec-order", "", "order to encode the register(s) that should be written to. Valid values: [AB, BA, ABCD, DCBA, BADC, CDAB]. Can only be used for 16bit (1 register) and 32bit (2 registers). If used, it will overwrite the big-endian or little-endian parameter.")
		parseBigEndian  = flag.Bool("order-parse-bigendian", true, "t: big, f: little")
		execBigEndian   = flag.Bool("order-exec-bigendian", true, "t: big, f: little")
		filename        = flag.String("filename", "", "")
		logframe        = flag.Bool("log-frame", false, "prints decoded frames to stdout")
	)

	flag.Parse()

	if len(os.Args) == 1 {
		flag.PrintDefaults()
		return
	}

	logger := slog.Default()
	if *logframe {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var (
		eo binary.ByteOrder = binary.BigEndian
		po binary.ByteOrder = binary.BigEndian
	)
	if !*execBigEndian {
		eo = binary.LittleEndian
	}
	if !*parseBigEndian {
		po = binary.LittleEndian
	}

	var (
		res string
		err error
	)
	if *decode != "" {
		decoder := &pdu.Decoder{}
		if *logframe {
			decoder.Logger = &debugAdapter{logger}
		}
		res, err = decodeFrame(decoder, *decode, *withSlave, po, *readParseOrder, *pType)
	} else {
		if *register > math.MaxUint16 || *register < 0 {
			logger.Error(fmt.Sprintf("invalid register value: %d", *register))
			os.Exit(-1)
		}
		if *slaveID > math.MaxUint8 {
			logger.Error(fmt.Sprintf("invalid slave id: %d", *slaveID))
			os.Exit(-1)
		}
		var req pdu.Request
		req, err = build(eo, *writeParseOrder, *register, *fnCode, *writeValue, *eType, *quantity)
		if err == nil {
			res, err = encodeFrame(req, *slaveID)
		}
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(-1)
	}

	logger.Info(res)

	if *filename != "" {
		if err := os.WriteFile(*filename, []byte(res), 0644); err != nil {
			logger.Error(err.Error())
			os.Exit(-1)
		}
		logger.Info(*filename + " successfully written\n")
	}
}

// build creates the request selected by fnCode.
func build(
	o binary.ByteOrder,
	forcedOrder string,
	register int,
	fnCode int,
	wval float64,
	etype string,
	quantity int,
) (pdu.Request, error) {
	address := uint16(register)
	switch fc := pdu.FunctionCode(fnCode); {
	case fnCode < 0 || fnCode > math.MaxUint8:
		return nil, fmt.Errorf("function code %d is out of range", fnCode)
	case pdu.IsReadFunction(fc):
		if quantity < 1 || quantity > math.MaxUint16 {
			return nil, fmt.Errorf("quantity %d is out of range", quantity)
		}
		return pdu.ReadRequest{Function: fc, Address: address, Quantity: uint16(quantity)}, nil
	case fc == pdu.FuncCodeWriteSingleCoil:
		return pdu.WriteSingleCoil{Address: address, State: pdu.CoilStateOf(wval > 0)}, nil
	case fc == pdu.FuncCodeWriteSingleRegister:
		max := float64(math.MaxUint16)
		if wval > max || wval < 0 {
			return nil, fmt.Errorf("overflow: %f does not fit into datatype uint16", wval)
		}
		return pdu.WriteSingleRegister{Address: address, Value: uint16(wval)}, nil
	case fc == pdu.FuncCodeWriteMultipleRegisters:
		buf, err := convertToBytes(etype, o, forcedOrder, wval)
		if err != nil {
			return nil, err
		}
		regs, err := pdu.NewRegisters(buf)
		if err != nil {
			return nil, fmt.Errorf("datatype %s does not fill whole registers: %w", etype, err)
		}
		req, err := pdu.NewWriteMultipleRegisters(address, regs)
		if err != nil {
			return nil, err
		}
		return req, nil
	default:
		return nil, fmt.Errorf("function code %d (%s) is unsupported", fnCode, fc)
	}
}

// encodeFrame returns req as hex, prefixed with the slave id if it is not negative.
func encodeFrame(req pdu.Request, slaveID int) (string, error) {
	b, err := pdu.Marshal(req)
	if err != nil {
		return "", err
	}
	if slaveID >= 0 {
		b = append([]byte{byte(slaveID)}, b...)
	}
	return fmt.Sprintf("% x", b), nil
}

// decodeFrame decodes the hex encoded frame and describes all requests in it.
func decodeFrame(d *pdu.Decoder, frame string, withSlave bool, order binary.ByteOrder, forcedOrder, pType string) (string, error) {
	data, err := parseHex(frame)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if withSlave {
		id, tail, ok := pdu.ReadSlaveID(data)
		if !ok {
			return "", fmt.Errorf("frame is empty")
		}
		fmt.Fprintf(buf, "slave\t%d (%s)\n", byte(id), slaveKind(id))
		data = tail
	}

	for len(data) > 0 {
		req, tail, err := d.Decode(data)
		if err != nil {
			return "", err
		}
		s, err := describe(req, order, forcedOrder, pType)
		if err != nil {
			return "", err
		}
		buf.WriteString(s)
		data = tail
	}
	return buf.String(), nil
}

func slaveKind(id pdu.SlaveID) string {
	switch {
	case id.IsBroadcast():
		return "broadcast"
	case id.IsDefaultTCP():
		return "default tcp"
	case id.IsReserved():
		return "reserved"
	}
	return "device"
}

func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ":", "", "0x", "", "0X", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex frame: %w", err)
	}
	return b, nil
}

func describe(req pdu.Request, order binary.ByteOrder, forcedOrder, pType string) (string, error) {
	fc := req.FunctionCode()
	head := fmt.Sprintf("function\t%d (%s)\n", byte(fc), fc)
	switch r := req.(type) {
	case pdu.ReadRequest:
		return head + fmt.Sprintf("address\t%d\nquantity\t%d\n", r.Address, r.Quantity), nil
	case pdu.WriteSingleCoil:
		return head + fmt.Sprintf("address\t%d\nstate\t%s\n", r.Address, r.State), nil
	case pdu.WriteSingleRegister:
		return head + fmt.Sprintf("address\t%d\nvalue\t%d\n", r.Address, r.Value), nil
	case pdu.WriteMultipleRegisters:
		var (
			res string
			err error
		)
		if pType == "raw" {
			res = resultToRawString(r.Registers(), int(r.Address()))
		} else {
			res, err = resultToString(r.Registers().Bytes(), order, forcedOrder, pType)
			if err != nil {
				return "", err
			}
			res += "\n"
		}
		return head + fmt.Sprintf("address\t%d\nquantity\t%d\n", r.Address(), r.Quantity()) + res, nil
	}
	return "", fmt.Errorf("unexpected request %T", req)
}

// wordOrder resolves a forced order such as "CDAB" to the byte order of
// each value and whether adjacent bytes of a 32-bit value are swapped.
func wordOrder(forcedOrder string, order binary.ByteOrder) (binary.ByteOrder, bool, error) {
	switch fo := strings.ToUpper(forcedOrder); fo {
	case "":
		return order, false, nil
	case "AB", "ABCD":
		return binary.BigEndian, false, nil
	case "BA", "DCBA":
		return binary.LittleEndian, false, nil
	case "BADC":
		return binary.BigEndian, true, nil
	case "CDAB":
		return binary.LittleEndian, true, nil
	default:
		return nil, false, fmt.Errorf("forced order %s not known", fo)
	}
}

func swapPairs(b []byte) []byte {
	if len(b) != 4 {
		return b
	}
	return []byte{b[1], b[0], b[3], b[2]}
}

func convertToBytes(eType string, order binary.ByteOrder, forcedOrder string, val float64) ([]byte, error) {
	order, swap, err := wordOrder(forcedOrder, order)
	if err != nil {
		return nil, err
	}

	var (
		lo, hi float64
		size   int
	)
	switch eType {
	case "uint16":
		lo, hi, size = 0, math.MaxUint16, 2
	case "int16":
		lo, hi, size = math.MinInt16, math.MaxInt16, 2
	case "uint32":
		lo, hi, size = 0, math.MaxUint32, 4
	case "float32":
		lo, hi, size = -math.MaxFloat32, math.MaxFloat32, 4
	case "float64":
		lo, hi, size = -math.MaxFloat64, math.MaxFloat64, 8
	default:
		return nil, fmt.Errorf("unsupported datatype: %s", eType)
	}
	if val < lo || val > hi {
		return nil, fmt.Errorf("overflow: %f does not fit into datatype %s", val, eType)
	}

	buf := make([]byte, size)
	switch eType {
	case "uint16":
		order.PutUint16(buf, uint16(val))
	case "int16":
		order.PutUint16(buf, uint16(int16(val)))
	case "uint32":
		order.PutUint32(buf, uint32(val))
	case "float32":
		order.PutUint32(buf, math.Float32bits(float32(val)))
	case "float64":
		order.PutUint64(buf, math.Float64bits(val))
	}
	if swap {
		buf = swapPairs(buf)
	}
	return buf, nil
}

// resultToRawString lists every register with its address in hex and binary.
func resultToRawString(regs pdu.Registers, startReg int) string {
	var b strings.Builder
	for i := 0; i < regs.Len(); i++ {
		v, _ := regs.Get(i)
		hi, lo := byte(v>>8), byte(v)
		fmt.Fprintf(&b, "%d\t0x%X 0x%X\t %b %b\n", startReg+i, hi, lo, hi, lo)
	}
	return b.String()
}

func resultToString(r []byte, order binary.ByteOrder, forcedOrder string, varType string) (string, error) {
	order, swap, err := wordOrder(forcedOrder, order)
	if err != nil {
		return "", err
	}
	if swap {
		r = swapPairs(r)
	}

	need := map[string]int{"uint16": 2, "int16": 2, "uint32": 4, "int32": 4, "float32": 4}
	if n, ok := need[varType]; ok && len(r) < n {
		return "", fmt.Errorf("%d bytes are too short for datatype %s", len(r), varType)
	}

	switch varType {
	case "string":
		return string(r), nil
	case "uint16":
		return fmt.Sprintf("%d", order.Uint16(r)), nil
	case "int16":
		return fmt.Sprintf("%d", int16(order.Uint16(r))), nil
	case "uint32":
		return fmt.Sprintf("%d", order.Uint32(r)), nil
	case "int32":
		return fmt.Sprintf("%d", int32(order.Uint32(r))), nil
	case "float32":
		return fmt.Sprintf("%f", math.Float32frombits(order.Uint32(r))), nil
	}
	return "", fmt.Errorf("unsupported datatype: %s", varType)
}
