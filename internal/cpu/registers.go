package cpu

const (
	// The stack is located in the fixed memory page $0100 to $01FF.
	stackPage = uint16(0x0100)

	powerOnSP = uint16(0x01fd)
)

// Registers is the architectural state of the CPU.
type Registers struct {
	A  uint8  // used to perform arithmetic and logical operations
	X  uint8  // used primarily for indexing and temporary storage
	Y  uint8  // used mainly for indexing and temporary storage
	PC uint16 // program counter
	SP uint16 // stack pointer, always inside $0100-$01FF
	P  Status // processor status
}

// NewRegisters returns the register file as it is at power-on.
func NewRegisters() Registers {
	return Registers{
		SP: powerOnSP,
		P:  powerOnStatus,
	}
}

// bump returns the current PC and advances it by one.
func (r *Registers) bump() uint16 {
	pc := r.PC
	r.PC++
	return pc
}

func (r *Registers) spDec() {
	r.SP = stackPage | uint16(uint8(r.SP)-1)
}

func (r *Registers) spInc() {
	r.SP = stackPage | uint16(uint8(r.SP)+1)
}
