package cpu

// Status is the processor status register (P).
type Status uint8

const (
	FlagC Status = 1 << iota // Carry
	FlagZ                    // Zero
	FlagI                    // Interrupt Disable
	FlagD                    // Decimal Mode
	FlagB                    // Break Command
	FlagU                    // Unused
	FlagV                    // Overflow
	FlagN                    // Negative
)

// powerOnStatus is the value of P right after power-on.
const powerOnStatus = Status(0x34)

func (s Status) Contains(flag Status) bool {
	return s&flag == flag
}

func (s *Status) Insert(flag Status) {
	*s |= flag
}

func (s *Status) Remove(flag Status) {
	*s &= ^flag
}

func (s *Status) Set(flag Status, v bool) {
	if v {
		s.Insert(flag)
		return
	}
	s.Remove(flag)
}

func (s *Status) setZN(value uint8) {
	s.Set(FlagZ, value == 0)
	s.Set(FlagN, value&0x80 > 0)
}

// String renders the flags as NV-BDIZC, upper case when set.
func (s Status) String() string {
	const set, clear = "NV-BDIZC", "nv-bdizc"
	out := []byte(clear)
	for i := 0; i < 8; i++ {
		if i == 2 {
			continue
		}
		if s&(0x80>>i) != 0 {
			out[i] = set[i]
		}
	}
	return string(out)
}
