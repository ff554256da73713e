package cpu

// Operation identifies what an instruction does, independent of its addressing mode.
type Operation uint8

const (
	opInvalid Operation = iota

	OpADC // Add with Carry
	OpAND // Logical AND
	OpASL // Arithmetic Shift Left
	OpBCC // Branch if Carry Clear
	OpBCS // Branch if Carry Set
	OpBEQ // Branch if Equal
	OpBIT // Bit Test
	OpBMI // Branch if Minus
	OpBNE // Branch if Not Equal
	OpBPL // Branch if Positive
	OpBRK // Force Interrupt
	OpBVC // Branch if Overflow Clear
	OpBVS // Branch if Overflow Set
	OpCLC // Clear Carry Flag
	OpCLD // Clear Decimal Mode
	OpCLI // Clear Interrupt Disable
	OpCLV // Clear Overflow Flag
	OpCMP // Compare
	OpCPX // Compare X Register
	OpCPY // Compare Y Register
	OpDEC // Decrement Memory
	OpDEX // Decrement X Register
	OpDEY // Decrement Y Register
	OpEOR // Exclusive OR
	OpINC // Increment Memory
	OpINX // Increment X Register
	OpINY // Increment Y Register
	OpJMP // Jump
	OpJSR // Jump to Subroutine
	OpLDA // Load Accumulator
	OpLDX // Load X Register
	OpLDY // Load Y Register
	OpLSR // Logical Shift Right
	OpNOP // No Operation
	OpORA // Logical Inclusive OR
	OpPHA // Push Accumulator
	OpPHP // Push Processor Status
	OpPLA // Pull Accumulator
	OpPLP // Pull Processor Status
	OpROL // Rotate Left
	OpROR // Rotate Right
	OpRTI // Return from Interrupt
	OpRTS // Return from Subroutine
	OpSBC // Subtract with Carry
	OpSEC // Set Carry Flag
	OpSED // Set Decimal Flag
	OpSEI // Set Interrupt Disable
	OpSTA // Store Accumulator
	OpSTX // Store X Register
	OpSTY // Store Y Register
	OpTAX // Transfer Accumulator to X
	OpTAY // Transfer Accumulator to Y
	OpTSX // Transfer Stack Pointer to X
	OpTXA // Transfer X to Accumulator
	OpTXS // Transfer X to Stack Pointer
	OpTYA // Transfer Y to Accumulator

	// undocumented
	OpALR // AND then LSR A
	OpANC // AND, carry from bit 7
	OpARR // AND then ROR A with odd V/C
	OpAXS // X = (A AND X) - operand
	OpLAX // LDA + LDX
	OpSAX // store A AND X
	OpDCP // DEC then CMP
	OpISC // INC then SBC
	OpRLA // ROL then AND
	OpRRA // ROR then ADC
	OpSLO // ASL then ORA
	OpSRE // LSR then EOR
	OpSKB // two byte NOP
	OpIGN // read and discard NOP
	OpANE // A = (A OR magic) AND X AND operand
	OpLXA // A = X = (A OR magic) AND operand
	OpLAS // A = X = SP = operand AND SP
	OpTAS // SP = A AND X, store SP AND (H+1)
	OpSHA // store A AND X AND (H+1)
	OpSHX // store X AND (H+1)
	OpSHY // store Y AND (H+1)
	OpJAM // halt

	numOperations
)

var operationNames = [numOperations]string{
	opInvalid: "???",
	OpADC:     "ADC", OpAND: "AND", OpASL: "ASL", OpBCC: "BCC", OpBCS: "BCS", OpBEQ: "BEQ",
	OpBIT: "BIT", OpBMI: "BMI", OpBNE: "BNE", OpBPL: "BPL", OpBRK: "BRK", OpBVC: "BVC",
	OpBVS: "BVS", OpCLC: "CLC", OpCLD: "CLD", OpCLI: "CLI", OpCLV: "CLV", OpCMP: "CMP",
	OpCPX: "CPX", OpCPY: "CPY", OpDEC: "DEC", OpDEX: "DEX", OpDEY: "DEY", OpEOR: "EOR",
	OpINC: "INC", OpINX: "INX", OpINY: "INY", OpJMP: "JMP", OpJSR: "JSR", OpLDA: "LDA",
	OpLDX: "LDX", OpLDY: "LDY", OpLSR: "LSR", OpNOP: "NOP", OpORA: "ORA", OpPHA: "PHA",
	OpPHP: "PHP", OpPLA: "PLA", OpPLP: "PLP", OpROL: "ROL", OpROR: "ROR", OpRTI: "RTI",
	OpRTS: "RTS", OpSBC: "SBC", OpSEC: "SEC", OpSED: "SED", OpSEI: "SEI", OpSTA: "STA",
	OpSTX: "STX", OpSTY: "STY", OpTAX: "TAX", OpTAY: "TAY", OpTSX: "TSX", OpTXA: "TXA",
	OpTXS: "TXS", OpTYA: "TYA",
	OpALR: "ALR", OpANC: "ANC", OpARR: "ARR", OpAXS: "AXS", OpLAX: "LAX", OpSAX: "SAX",
	OpDCP: "DCP", OpISC: "ISC", OpRLA: "RLA", OpRRA: "RRA", OpSLO: "SLO", OpSRE: "SRE",
	OpSKB: "SKB", OpIGN: "IGN", OpANE: "ANE", OpLXA: "LXA", OpLAS: "LAS", OpTAS: "TAS",
	OpSHA: "SHA", OpSHX: "SHX", OpSHY: "SHY", OpJAM: "JAM",
}

func (op Operation) String() string {
	if op >= numOperations {
		return "???"
	}
	return operationNames[op]
}

// Official reports whether the operation is part of the documented instruction set.
func (op Operation) Official() bool {
	return op > opInvalid && op < OpALR
}

// readsOperand reports whether the operation consumes the byte at the effective address.
func (op Operation) readsOperand() bool {
	switch op {
	case OpSTA, OpSTX, OpSTY, OpSAX, OpSHA, OpSHX, OpSHY, OpTAS,
		OpJMP, OpJSR,
		OpBCC, OpBCS, OpBEQ, OpBMI, OpBNE, OpBPL, OpBVC, OpBVS:
		return false
	}
	return true
}

// pagePenalty reports whether crossing a page while indexing costs this operation a cycle.
// Stores and read-modify-write operations always pay for the fix-up in their base cycles.
func (op Operation) pagePenalty() bool {
	switch op {
	case OpADC, OpAND, OpCMP, OpEOR, OpLDA, OpLDX, OpLDY, OpORA, OpSBC, OpLAX, OpLAS, OpIGN:
		return true
	}
	return false
}

type opcodeFunc func(c *CPU) error

var operations = [numOperations]opcodeFunc{
	OpADC: (*CPU).adc, OpAND: (*CPU).and, OpASL: (*CPU).asl, OpBCC: (*CPU).bcc,
	OpBCS: (*CPU).bcs, OpBEQ: (*CPU).beq, OpBIT: (*CPU).bit, OpBMI: (*CPU).bmi,
	OpBNE: (*CPU).bne, OpBPL: (*CPU).bpl, OpBRK: (*CPU).brk, OpBVC: (*CPU).bvc,
	OpBVS: (*CPU).bvs, OpCLC: (*CPU).clc, OpCLD: (*CPU).cld, OpCLI: (*CPU).cli,
	OpCLV: (*CPU).clv, OpCMP: (*CPU).cmp, OpCPX: (*CPU).cpx, OpCPY: (*CPU).cpy,
	OpDEC: (*CPU).dec, OpDEX: (*CPU).dex, OpDEY: (*CPU).dey, OpEOR: (*CPU).eor,
	OpINC: (*CPU).inc, OpINX: (*CPU).inx, OpINY: (*CPU).iny, OpJMP: (*CPU).jmp,
	OpJSR: (*CPU).jsr, OpLDA: (*CPU).lda, OpLDX: (*CPU).ldx, OpLDY: (*CPU).ldy,
	OpLSR: (*CPU).lsr, OpNOP: (*CPU).nop, OpORA: (*CPU).ora, OpPHA: (*CPU).pha,
	OpPHP: (*CPU).php, OpPLA: (*CPU).pla, OpPLP: (*CPU).plp, OpROL: (*CPU).rol,
	OpROR: (*CPU).ror, OpRTI: (*CPU).rti, OpRTS: (*CPU).rts, OpSBC: (*CPU).sbc,
	OpSEC: (*CPU).sec, OpSED: (*CPU).sed, OpSEI: (*CPU).sei, OpSTA: (*CPU).sta,
	OpSTX: (*CPU).stx, OpSTY: (*CPU).sty, OpTAX: (*CPU).tax, OpTAY: (*CPU).tay,
	OpTSX: (*CPU).tsx, OpTXA: (*CPU).txa, OpTXS: (*CPU).txs, OpTYA: (*CPU).tya,

	OpALR: (*CPU).alr, OpANC: (*CPU).anc, OpARR: (*CPU).arr, OpAXS: (*CPU).axs,
	OpLAX: (*CPU).lax, OpSAX: (*CPU).sax, OpDCP: (*CPU).dcp, OpISC: (*CPU).isc,
	OpRLA: (*CPU).rla, OpRRA: (*CPU).rra, OpSLO: (*CPU).slo, OpSRE: (*CPU).sre,
	OpSKB: (*CPU).nop, OpIGN: (*CPU).nop, OpANE: (*CPU).ane, OpLXA: (*CPU).lxa,
	OpLAS: (*CPU).las, OpTAS: (*CPU).tas, OpSHA: (*CPU).sha, OpSHX: (*CPU).shx,
	OpSHY: (*CPU).shy, OpJAM: (*CPU).jam,
}

// magic is the value the unstable ANE/LXA opcodes OR into A on most chips.
const magic = 0xee

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

// writeResult stores the result of a shift/rotate either to A or back to memory.
func (c *CPU) writeResult(r uint8) error {
	if c.instr.Mode == AddrModeACC {
		c.A = r
		return nil
	}
	return c.write8(c.operand.addr, r)
}

func (c *CPU) addWithCarry(v uint8) {
	r16 := uint16(c.A) + uint16(v)
	if c.P.Contains(FlagC) {
		r16++
	}
	r8 := uint8(r16)
	c.P.Set(FlagC, r16 > 0xff)
	c.P.Set(FlagV, isSameSign(c.A, v) && !isSameSign(c.A, r8))
	c.A = r8
	c.P.setZN(c.A)
}

func (c *CPU) compare(reg, v uint8) {
	c.P.Set(FlagC, reg >= v)
	c.P.setZN(reg - v)
}

func (c *CPU) adc() error {
	c.addWithCarry(c.operand.value)
	return nil
}

func (c *CPU) sbc() error {
	c.addWithCarry(^c.operand.value)
	return nil
}

func (c *CPU) and() error {
	c.A &= c.operand.value
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) ora() error {
	c.A |= c.operand.value
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) eor() error {
	c.A ^= c.operand.value
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) shiftLeft(v uint8, carryIn bool) uint8 {
	c.P.Set(FlagC, v&0x80 > 0)
	r := v << 1
	if carryIn {
		r |= 0x01
	}
	c.P.setZN(r)
	return r
}

func (c *CPU) shiftRight(v uint8, carryIn bool) uint8 {
	c.P.Set(FlagC, v&0x01 > 0)
	r := v >> 1
	if carryIn {
		r |= 0x80
	}
	c.P.setZN(r)
	return r
}

func (c *CPU) asl() error {
	return c.writeResult(c.shiftLeft(c.operand.value, false))
}

func (c *CPU) lsr() error {
	return c.writeResult(c.shiftRight(c.operand.value, false))
}

func (c *CPU) rol() error {
	return c.writeResult(c.shiftLeft(c.operand.value, c.P.Contains(FlagC)))
}

func (c *CPU) ror() error {
	return c.writeResult(c.shiftRight(c.operand.value, c.P.Contains(FlagC)))
}

func (c *CPU) bit() error {
	v := c.operand.value
	c.P.Set(FlagZ, c.A&v == 0)
	c.P.Set(FlagN, v&0x80 > 0)
	c.P.Set(FlagV, v&0x40 > 0)
	return nil
}

// branchIf jumps to the resolved address when the condition holds.
// A taken branch costs a cycle, one more if it lands on another page.
func (c *CPU) branchIf(condition bool) error {
	if !condition {
		return nil
	}
	c.extra++
	if isDiffPage(c.PC, c.operand.addr) {
		c.extra++
	}
	c.PC = c.operand.addr
	return nil
}

func (c *CPU) bcc() error { return c.branchIf(!c.P.Contains(FlagC)) }
func (c *CPU) bcs() error { return c.branchIf(c.P.Contains(FlagC)) }
func (c *CPU) beq() error { return c.branchIf(c.P.Contains(FlagZ)) }
func (c *CPU) bmi() error { return c.branchIf(c.P.Contains(FlagN)) }
func (c *CPU) bne() error { return c.branchIf(!c.P.Contains(FlagZ)) }
func (c *CPU) bpl() error { return c.branchIf(!c.P.Contains(FlagN)) }
func (c *CPU) bvc() error { return c.branchIf(!c.P.Contains(FlagV)) }
func (c *CPU) bvs() error { return c.branchIf(c.P.Contains(FlagV)) }

func (c *CPU) brk() error {
	// the byte after BRK is padding
	c.PC++
	if err := c.stackPush16(c.PC); err != nil {
		return err
	}
	if err := c.stackPush8(uint8(c.P | FlagB | FlagU)); err != nil {
		return err
	}
	c.P.Insert(FlagI)
	c.PC = c.read16(irqVector)
	return nil
}

func (c *CPU) clc() error { c.P.Remove(FlagC); return nil }
func (c *CPU) cld() error { c.P.Remove(FlagD); return nil }
func (c *CPU) cli() error { c.P.Remove(FlagI); return nil }
func (c *CPU) clv() error { c.P.Remove(FlagV); return nil }
func (c *CPU) sec() error { c.P.Insert(FlagC); return nil }
func (c *CPU) sed() error { c.P.Insert(FlagD); return nil }
func (c *CPU) sei() error { c.P.Insert(FlagI); return nil }

func (c *CPU) cmp() error {
	c.compare(c.A, c.operand.value)
	return nil
}

func (c *CPU) cpx() error {
	c.compare(c.X, c.operand.value)
	return nil
}

func (c *CPU) cpy() error {
	c.compare(c.Y, c.operand.value)
	return nil
}

func (c *CPU) dec() error {
	r := c.operand.value - 1
	c.P.setZN(r)
	return c.write8(c.operand.addr, r)
}

func (c *CPU) inc() error {
	r := c.operand.value + 1
	c.P.setZN(r)
	return c.write8(c.operand.addr, r)
}

func (c *CPU) dex() error {
	c.X--
	c.P.setZN(c.X)
	return nil
}

func (c *CPU) dey() error {
	c.Y--
	c.P.setZN(c.Y)
	return nil
}

func (c *CPU) inx() error {
	c.X++
	c.P.setZN(c.X)
	return nil
}

func (c *CPU) iny() error {
	c.Y++
	c.P.setZN(c.Y)
	return nil
}

func (c *CPU) jmp() error {
	c.PC = c.operand.addr
	return nil
}

func (c *CPU) jsr() error {
	// PC already points past the operand, the return address is pushed minus one
	if err := c.stackPush16(c.PC - 1); err != nil {
		return err
	}
	c.PC = c.operand.addr
	return nil
}

func (c *CPU) lda() error {
	c.A = c.operand.value
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) ldx() error {
	c.X = c.operand.value
	c.P.setZN(c.X)
	return nil
}

func (c *CPU) ldy() error {
	c.Y = c.operand.value
	c.P.setZN(c.Y)
	return nil
}

func (c *CPU) nop() error {
	return nil
}

func (c *CPU) pha() error {
	return c.stackPush8(c.A)
}

func (c *CPU) php() error {
	return c.stackPush8(uint8(c.P | FlagB | FlagU))
}

func (c *CPU) pla() error {
	c.A = c.stackPop8()
	c.P.setZN(c.A)
	return nil
}

// pullStatus restores P from the stack. B only exists on the stack copy
// and U always reads back as set.
func (c *CPU) pullStatus() {
	c.P = (Status(c.stackPop8()) | FlagU) & ^FlagB
}

func (c *CPU) plp() error {
	c.pullStatus()
	return nil
}

func (c *CPU) rti() error {
	c.pullStatus()
	c.PC = c.stackPop16()
	return nil
}

func (c *CPU) rts() error {
	c.PC = c.stackPop16() + 1
	return nil
}

func (c *CPU) sta() error {
	return c.write8(c.operand.addr, c.A)
}

func (c *CPU) stx() error {
	return c.write8(c.operand.addr, c.X)
}

func (c *CPU) sty() error {
	return c.write8(c.operand.addr, c.Y)
}

func (c *CPU) tax() error {
	c.X = c.A
	c.P.setZN(c.X)
	return nil
}

func (c *CPU) tay() error {
	c.Y = c.A
	c.P.setZN(c.Y)
	return nil
}

func (c *CPU) txa() error {
	c.A = c.X
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) tya() error {
	c.A = c.Y
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) tsx() error {
	c.X = uint8(c.SP)
	c.P.setZN(c.X)
	return nil
}

func (c *CPU) txs() error {
	c.SP = stackPage | uint16(c.X)
	return nil
}

func (c *CPU) lax() error {
	c.A = c.operand.value
	c.X = c.operand.value
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) sax() error {
	return c.write8(c.operand.addr, c.A&c.X)
}

func (c *CPU) dcp() error {
	r := c.operand.value - 1
	if err := c.write8(c.operand.addr, r); err != nil {
		return err
	}
	c.compare(c.A, r)
	return nil
}

func (c *CPU) isc() error {
	r := c.operand.value + 1
	if err := c.write8(c.operand.addr, r); err != nil {
		return err
	}
	c.addWithCarry(^r)
	return nil
}

func (c *CPU) slo() error {
	r := c.shiftLeft(c.operand.value, false)
	if err := c.write8(c.operand.addr, r); err != nil {
		return err
	}
	c.A |= r
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) rla() error {
	r := c.shiftLeft(c.operand.value, c.P.Contains(FlagC))
	if err := c.write8(c.operand.addr, r); err != nil {
		return err
	}
	c.A &= r
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) sre() error {
	r := c.shiftRight(c.operand.value, false)
	if err := c.write8(c.operand.addr, r); err != nil {
		return err
	}
	c.A ^= r
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) rra() error {
	r := c.shiftRight(c.operand.value, c.P.Contains(FlagC))
	if err := c.write8(c.operand.addr, r); err != nil {
		return err
	}
	c.addWithCarry(r)
	return nil
}

func (c *CPU) anc() error {
	c.A &= c.operand.value
	c.P.setZN(c.A)
	c.P.Set(FlagC, c.A&0x80 > 0)
	return nil
}

func (c *CPU) alr() error {
	c.A &= c.operand.value
	c.A = c.shiftRight(c.A, false)
	return nil
}

func (c *CPU) arr() error {
	c.A &= c.operand.value
	c.A >>= 1
	if c.P.Contains(FlagC) {
		c.A |= 0x80
	}
	c.P.setZN(c.A)
	c.P.Set(FlagC, c.A&0x40 > 0)
	c.P.Set(FlagV, (c.A>>6^c.A>>5)&0x01 > 0)
	return nil
}

func (c *CPU) axs() error {
	t := c.A & c.X
	c.P.Set(FlagC, t >= c.operand.value)
	c.X = t - c.operand.value
	c.P.setZN(c.X)
	return nil
}

func (c *CPU) ane() error {
	c.A = (c.A | magic) & c.X & c.operand.value
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) lxa() error {
	c.A = (c.A | magic) & c.operand.value
	c.X = c.A
	c.P.setZN(c.A)
	return nil
}

func (c *CPU) las() error {
	r := c.operand.value & uint8(c.SP)
	c.A = r
	c.X = r
	c.SP = stackPage | uint16(r)
	c.P.setZN(r)
	return nil
}

// storeHighAnd implements the SHA/SHX/SHY/TAS family: the stored value is
// ANDed with the high byte of the base address plus one, and when indexing
// crossed a page that value also replaces the high byte of the target.
func (c *CPU) storeHighAnd(v uint8) error {
	addr := c.operand.addr
	hi := uint8(addr>>8) + 1
	if c.operand.pageCrossed {
		hi--
	}
	v &= hi
	if c.operand.pageCrossed {
		addr = uint16(v)<<8 | addr&0x00ff
	}
	return c.write8(addr, v)
}

func (c *CPU) sha() error {
	return c.storeHighAnd(c.A & c.X)
}

func (c *CPU) shx() error {
	return c.storeHighAnd(c.X)
}

func (c *CPU) shy() error {
	return c.storeHighAnd(c.Y)
}

func (c *CPU) tas() error {
	c.SP = stackPage | uint16(c.A&c.X)
	return c.storeHighAnd(c.A & c.X)
}

func (c *CPU) jam() error {
	c.jammed = true
	return ErrJammed
}
