package nes

import "fmt"

type busOp uint8

const (
	busRead busOp = iota
	busWrite
)

func (op busOp) String() string {
	if op == busWrite {
		return "write"
	}
	return "read"
}

// BusError reports an access the memory map cannot serve.
type BusError struct {
	Op     busOp
	Addr   uint16
	Reason string
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bus fault: %s at $%04X: %s", e.Op, e.Addr, e.Reason)
}

// OpcodeError reports a byte with no instruction table entry while the
// CPU runs with OpcodePolicyFault.
type OpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}
