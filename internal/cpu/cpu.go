package cpu

const (
	nmiVector   = uint16(0xfffa)
	resetVector = uint16(0xfffc)
	irqVector   = uint16(0xfffe)

	interruptCycles = 7
)

// Bus is the CPU view of the address space.
type Bus interface {
	Read8(addr uint16) uint8
	Read16(addr uint16) uint16
	Write8(addr uint16, data uint8) error
}

type CPU struct {
	Registers

	bus     Bus         // bus of the instruction being executed
	opcode  uint8       // opcode of the current instruction
	instr   Instruction // current instruction
	operand operand     // resolved operand of the current instruction
	extra   int         // cycles added by the current instruction
	cycles  uint64      // total cycles since power-on
	jammed  bool
}

// NewCPU returns a CPU in its power-on state.
func NewCPU() *CPU {
	return &CPU{
		Registers: NewRegisters(),
	}
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.bus.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return c.bus.Read16(addr)
}

func (c *CPU) write8(addr uint16, data uint8) error {
	return c.bus.Write8(addr, data)
}

func (c *CPU) stackPush8(data uint8) error {
	if err := c.write8(c.SP, data); err != nil {
		return err
	}
	c.spDec()
	return nil
}

func (c *CPU) stackPush16(data uint16) error {
	if err := c.stackPush8(uint8(data >> 8)); err != nil {
		return err
	}
	return c.stackPush8(uint8(data))
}

func (c *CPU) stackPop8() uint8 {
	c.spInc()
	return c.read8(c.SP)
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

// Cycles returns the number of cycles executed since power-on.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Snapshot returns a copy of the register file.
func (c *CPU) Snapshot() Registers {
	return c.Registers
}

// SetPC moves execution to addr, e.g. to the automation entry point of a test ROM.
func (c *CPU) SetPC(addr uint16) {
	c.PC = addr
}

// Jammed reports whether a JAM opcode has halted the CPU.
func (c *CPU) Jammed() bool {
	return c.jammed
}

// Step executes one instruction and returns the number of cycles it took.
// Any error is fatal for the running program and is an *ExecError.
func (c *CPU) Step(bus Bus) (int, error) {
	if c.jammed {
		// no bus access until Reset
		return 0, &ExecError{Opcode: c.opcode, PC: c.PC, Err: ErrJammed}
	}

	c.bus = bus
	pc := c.PC
	opcode := c.read8(pc)
	c.opcode = opcode
	c.PC++
	instr, err := Decode(opcode)
	if err != nil {
		return 0, &ExecError{Opcode: opcode, PC: pc, Err: err}
	}

	c.instr = instr
	c.extra = 0
	c.operand, err = c.fetchOperand(instr.Mode, instr.Op.readsOperand())
	if err != nil {
		return 0, &ExecError{Opcode: opcode, PC: pc, Err: err}
	}

	if err := operations[instr.Op](c); err != nil {
		return 0, &ExecError{Opcode: opcode, PC: pc, Addr: c.operand.addr, Err: err}
	}

	if c.operand.pageCrossed && instr.Op.pagePenalty() {
		c.extra++
	}

	n := instr.Cycles + c.extra
	c.cycles += uint64(n)
	return n, nil
}

// Reset puts the CPU into its reset state and loads PC from the reset vector.
func (c *CPU) Reset(bus Bus) {
	c.bus = bus
	c.A = 0
	c.X = 0
	c.Y = 0
	c.P = FlagU | FlagI
	c.SP = powerOnSP
	c.PC = c.read16(resetVector)
	c.cycles += interruptCycles
	c.jammed = false
}

func (c *CPU) interrupt(vector uint16) (int, error) {
	if err := c.stackPush16(c.PC); err != nil {
		return 0, err
	}
	if err := c.stackPush8(uint8((c.P | FlagU) & ^FlagB)); err != nil {
		return 0, err
	}
	c.P.Insert(FlagI)
	c.PC = c.read16(vector)
	c.cycles += interruptCycles
	return interruptCycles, nil
}

// NMI services a non-maskable interrupt request and returns the cycles spent.
func (c *CPU) NMI(bus Bus) (int, error) {
	c.bus = bus
	return c.interrupt(nmiVector)
}

// IRQ services an interrupt request unless interrupts are disabled.
func (c *CPU) IRQ(bus Bus) (int, error) {
	if c.P.Contains(FlagI) {
		return 0, nil
	}
	c.bus = bus
	return c.interrupt(irqVector)
}
