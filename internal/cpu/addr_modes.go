package cpu

import "fmt"

type AddrMode uint8

const (
	// Immediate
	// Operand is a constant value.
	// Example: LDA #$10
	AddrModeIMM AddrMode = iota + 1

	// Zero Page
	// Operand is located in the first 256 bytes of memory.
	// Example: LDA $10
	AddrModeZP

	// Zero Page, X
	// Zero page address plus X, wrapping inside the zero page.
	// Example: LDA $10,X
	AddrModeZPX

	// Zero Page, Y
	// Zero page address plus Y, wrapping inside the zero page.
	// Example: LDX $10,Y
	AddrModeZPY

	// Absolute
	// Full 16-bit address.
	// Example: LDA $1234
	AddrModeABS

	// Absolute, X
	// Full 16-bit address plus X. Crossing a page may cost a cycle.
	// Example: LDA $1234,X
	AddrModeABSX

	// Absolute, Y
	// Full 16-bit address plus Y. Crossing a page may cost a cycle.
	// Example: LDA $1234,Y
	AddrModeABSY

	// Indirect
	// Address is fetched from a pointer. Only JMP uses it.
	// Example: JMP ($1234)
	AddrModeIND

	// Indexed Indirect (X)
	// Zero page pointer indexed by X before it is dereferenced.
	// Example: LDA ($10,X)
	AddrModeINDX

	// Indirect Indexed (Y)
	// Zero page pointer dereferenced, then Y is added.
	// Example: LDA ($10),Y
	AddrModeINDY

	// Relative
	// Signed 8-bit offset from the address of the next instruction.
	// Example: BNE $10
	AddrModeREL

	// Accumulator
	// Operand is the accumulator.
	// Example: LSR A
	AddrModeACC

	// Implied
	// Operand is implicit.
	// Example: CLC
	AddrModeIMP
)

func (mode AddrMode) String() string {
	switch mode {
	case AddrModeIMM:
		return "IMM"
	case AddrModeZP:
		return "ZP"
	case AddrModeZPX:
		return "ZPX"
	case AddrModeZPY:
		return "ZPY"
	case AddrModeABS:
		return "ABS"
	case AddrModeABSX:
		return "ABSX"
	case AddrModeABSY:
		return "ABSY"
	case AddrModeIND:
		return "IND"
	case AddrModeINDX:
		return "INDX"
	case AddrModeINDY:
		return "INDY"
	case AddrModeREL:
		return "REL"
	case AddrModeACC:
		return "ACC"
	case AddrModeIMP:
		return "IMP"
	}
	return "???"
}

// operandSize is the number of instruction bytes the mode consumes after the opcode.
func (mode AddrMode) operandSize() int {
	switch mode {
	case AddrModeIMM, AddrModeZP, AddrModeZPX, AddrModeZPY, AddrModeINDX, AddrModeINDY, AddrModeREL:
		return 1
	case AddrModeABS, AddrModeABSX, AddrModeABSY, AddrModeIND:
		return 2
	}
	return 0
}

// operand is what the resolver hands to an operation.
type operand struct {
	value       uint8
	addr        uint16 // effective address, 0 if not applicable
	pageCrossed bool
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// fetchOperand consumes the operand bytes of the current instruction and
// resolves the effective address. The byte at the effective address is read
// only when load is set: stores and jumps must not touch their target,
// reading a PPU port has side effects.
func (c *CPU) fetchOperand(mode AddrMode, load bool) (operand, error) {
	var o operand

	switch mode {
	case AddrModeIMP:
		return o, nil

	case AddrModeACC:
		o.value = c.A
		return o, nil

	case AddrModeIMM:
		o.value = c.read8(c.bump())
		return o, nil

	case AddrModeZP:
		o.addr = uint16(c.read8(c.bump()))

	case AddrModeZPX:
		o.addr = uint16(c.read8(c.bump()) + c.X)

	case AddrModeZPY:
		o.addr = uint16(c.read8(c.bump()) + c.Y)

	case AddrModeABS:
		o.addr = c.read16(c.PC)
		c.PC += 2

	case AddrModeABSX:
		base := c.read16(c.PC)
		c.PC += 2
		o.addr = base + uint16(c.X)
		o.pageCrossed = isDiffPage(base, o.addr)

	case AddrModeABSY:
		base := c.read16(c.PC)
		c.PC += 2
		o.addr = base + uint16(c.Y)
		o.pageCrossed = isDiffPage(base, o.addr)

	case AddrModeIND:
		ptr := c.read16(c.PC)
		c.PC += 2
		// the high byte of the pointer is never carried into:
		// JMP ($10FF) reads $10FF and $1000
		hi := (ptr & 0xff00) | uint16(uint8(ptr)+1)
		o.addr = uint16(c.read8(ptr)) | uint16(c.read8(hi))<<8
		return o, nil

	case AddrModeINDX:
		ptr := c.read8(c.bump()) + c.X
		o.addr = c.readZP16(ptr)

	case AddrModeINDY:
		base := c.readZP16(c.read8(c.bump()))
		o.addr = base + uint16(c.Y)
		o.pageCrossed = isDiffPage(base, o.addr)

	case AddrModeREL:
		offset := uint16(c.read8(c.bump()))
		if offset&0x80 > 0 {
			offset |= 0xff00 // add leading 1 s to save the sign
		}
		o.addr = c.PC + offset
		return o, nil

	default:
		return o, fmt.Errorf("%w: %d", ErrUnsupportedMode, mode)
	}

	if load {
		o.value = c.read8(o.addr)
	}
	return o, nil
}

// readZP16 reads a little-endian pointer from the zero page,
// the high byte wraps to $00 when ptr is $FF.
func (c *CPU) readZP16(ptr uint8) uint16 {
	lo := uint16(c.read8(uint16(ptr)))
	hi := uint16(c.read8(uint16(ptr + 1)))
	return lo | hi<<8
}
