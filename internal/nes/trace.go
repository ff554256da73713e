package nes

import (
	"fmt"
	"strings"

	"github.com/nevisdale/nescore/internal/cpu"
)

// Trace is the machine state right before an instruction executes.
type Trace struct {
	Line     cpu.Line
	Regs     cpu.Registers
	Scanline int
	Dot      int
	Cycles   uint64
}

// Trace captures the state before the next Step.
func (c *Console) Trace() Trace {
	st := c.bus.PPUState()
	return Trace{
		Line:     c.Disassemble(c.cpu.PC, 1)[0],
		Regs:     c.cpu.Snapshot(),
		Scanline: st.Scanline,
		Dot:      st.Dot,
		Cycles:   c.cpu.Cycles(),
	}
}

// Code is the address, bytes and mnemonic columns of a nestest-like log line.
func (t Trace) Code() string {
	raw := make([]string, len(t.Line.Bytes))
	for i, b := range t.Line.Bytes {
		raw[i] = fmt.Sprintf("%02X", b)
	}
	text := t.Line.Text
	if !strings.HasPrefix(text, "*") {
		text = " " + text
	}
	return fmt.Sprintf("%04X  %-9s%-33s", t.Line.Addr, strings.Join(raw, " "), text)
}

// State is the register, PPU and cycle columns of a nestest-like log line.
func (t Trace) State() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		t.Regs.A, t.Regs.X, t.Regs.Y, uint8(t.Regs.P), uint8(t.Regs.SP), t.Scanline, t.Dot, t.Cycles)
}

// String formats the trace like a nestest.log line, without the "= XX"
// memory annotations:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
func (t Trace) String() string {
	return t.Code() + t.State()
}
