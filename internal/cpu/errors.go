package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when an opcode has no entry in the decode table.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnsupportedMode is returned when the resolver meets an addressing mode
	// it has no rule for.
	ErrUnsupportedMode = errors.New("unsupported addressing mode")

	// ErrJammed is returned once a JAM opcode has locked the CPU up.
	// Only Reset brings it back.
	ErrJammed = errors.New("cpu jammed")
)

// ExecError describes a fatal failure of a single Step.
type ExecError struct {
	Opcode uint8
	PC     uint16 // address of the opcode byte
	Addr   uint16 // effective address of the operand, 0 if none
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("cpu: opcode $%02X at $%04X (addr $%04X): %v", e.Opcode, e.PC, e.Addr, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
