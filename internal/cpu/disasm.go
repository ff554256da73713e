package cpu

import "fmt"

// Reader is the read-only view of memory the disassembler needs.
type Reader interface {
	Read8(addr uint16) uint8
}

func peek16(r Reader, addr uint16) uint16 {
	return uint16(r.Read8(addr)) | uint16(r.Read8(addr+1))<<8
}

// mnemonic names an instruction the way nestest.log does. Undocumented
// opcodes are marked with "*", including the ones that behave like a
// documented NOP or SBC.
func mnemonic(opcode uint8, instr Instruction) string {
	name := instr.Op.String()
	switch instr.Op {
	case OpSKB, OpIGN:
		name = "NOP"
	case OpISC:
		name = "ISB"
	}

	undocumented := !instr.Op.Official() ||
		instr.Op == OpNOP && opcode != 0xea ||
		instr.Op == OpSBC && opcode == 0xeb
	if undocumented {
		return "*" + name
	}
	return name
}

// Disassemble decodes the instruction at addr and returns its text together
// with its length in bytes. Mnemonics follow nestest.log, but the "= XX"
// memory annotations are left out. Undecodable bytes render as ".db $XX".
// Memory is only read through r, so PPU ports are never touched as long as
// r does not route reads to them.
func Disassemble(r Reader, addr uint16) (string, int) {
	opcode := r.Read8(addr)
	instr, err := Decode(opcode)
	if err != nil {
		return fmt.Sprintf(".db $%02X", opcode), 1
	}

	name := mnemonic(opcode, instr)

	pc := addr + 1
	switch instr.Mode {
	case AddrModeIMM:
		return fmt.Sprintf("%s #$%02X", name, r.Read8(pc)), 2
	case AddrModeZP:
		return fmt.Sprintf("%s $%02X", name, r.Read8(pc)), 2
	case AddrModeZPX:
		return fmt.Sprintf("%s $%02X,X", name, r.Read8(pc)), 2
	case AddrModeZPY:
		return fmt.Sprintf("%s $%02X,Y", name, r.Read8(pc)), 2
	case AddrModeABS:
		return fmt.Sprintf("%s $%04X", name, peek16(r, pc)), 3
	case AddrModeABSX:
		return fmt.Sprintf("%s $%04X,X", name, peek16(r, pc)), 3
	case AddrModeABSY:
		return fmt.Sprintf("%s $%04X,Y", name, peek16(r, pc)), 3
	case AddrModeIND:
		return fmt.Sprintf("%s ($%04X)", name, peek16(r, pc)), 3
	case AddrModeINDX:
		return fmt.Sprintf("%s ($%02X,X)", name, r.Read8(pc)), 2
	case AddrModeINDY:
		return fmt.Sprintf("%s ($%02X),Y", name, r.Read8(pc)), 2
	case AddrModeREL:
		offset := uint16(r.Read8(pc))
		if offset&0x80 > 0 {
			offset |= 0xff00
		}
		return fmt.Sprintf("%s $%04X", name, pc+1+offset), 2
	case AddrModeACC:
		return name + " A", 1
	}
	return name, 1
}

// Line is one disassembled instruction.
type Line struct {
	Addr  uint16
	Bytes []uint8
	Text  string
}

// DisassembleRange decodes count instructions starting at addr.
func DisassembleRange(r Reader, addr uint16, count int) []Line {
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		text, n := Disassemble(r, addr)
		raw := make([]uint8, n)
		for j := range raw {
			raw[j] = r.Read8(addr + uint16(j))
		}
		lines = append(lines, Line{Addr: addr, Bytes: raw, Text: text})
		addr += uint16(n)
	}
	return lines
}
