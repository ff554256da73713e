package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ramBus is a flat 64 KB memory.
type ramBus struct {
	data   [0x10000]uint8
	failAt map[uint16]error
}

func (b *ramBus) Read8(addr uint16) uint8 {
	return b.data[addr]
}

func (b *ramBus) Read16(addr uint16) uint16 {
	return uint16(b.Read8(addr)) | uint16(b.Read8(addr+1))<<8
}

func (b *ramBus) Write8(addr uint16, data uint8) error {
	if err, ok := b.failAt[addr]; ok {
		return err
	}
	b.data[addr] = data
	return nil
}

func (b *ramBus) load(addr uint16, program ...uint8) {
	copy(b.data[addr:], program)
}

const programStart = uint16(0x8000)

func newTestCPU(program ...uint8) (*CPU, *ramBus) {
	bus := &ramBus{}
	bus.load(programStart, program...)
	c := NewCPU()
	c.PC = programStart
	c.P = FlagU
	return c, bus
}

func mustStep(t *testing.T, c *CPU, bus Bus) int {
	t.Helper()
	n, err := c.Step(bus)
	require.NoError(t, err)
	return n
}

type busMock struct {
	mock.Mock
}

func (m *busMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *busMock) Read16(addr uint16) uint16 {
	args := m.Called(addr)
	return args.Get(0).(uint16)
}

func (m *busMock) Write8(addr uint16, data uint8) error {
	args := m.Called(addr, data)
	return args.Error(0)
}

func TestNewCPU_PowerOn(t *testing.T) {
	c := NewCPU()
	assert.Equal(t, Status(0x34), c.P)
	assert.Equal(t, uint16(0x01fd), c.SP)
	assert.Equal(t, uint64(0), c.Cycles())
}

func TestCPU_StepCycles(t *testing.T) {
	type testArgs struct {
		program        []uint8
		x              uint8
		expectedCycles int
	}

	testDo := func(t *testing.T, in testArgs) {
		c, bus := newTestCPU(in.program...)
		c.X = in.x
		assert.Equal(t, in.expectedCycles, mustStep(t, c, bus))
		assert.Equal(t, uint64(in.expectedCycles), c.Cycles())
	}

	t.Run("BRK", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x00}, expectedCycles: 7})
	})
	t.Run("ADC immediate", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x69, 0x01}, expectedCycles: 2})
	})
	t.Run("NOP", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xea}, expectedCycles: 2})
	})
	t.Run("ASL absolute,X", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x1e, 0x00, 0x02}, x: 1, expectedCycles: 7})
	})
	t.Run("ASL absolute,X crossing a page", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x1e, 0xff, 0x02}, x: 1, expectedCycles: 7})
	})
	t.Run("LDA absolute,X", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xbd, 0x00, 0x02}, x: 1, expectedCycles: 4})
	})
	t.Run("LDA absolute,X crossing a page", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xbd, 0xff, 0x02}, x: 1, expectedCycles: 5})
	})
	t.Run("STA absolute,X crossing a page", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x9d, 0xff, 0x02}, x: 1, expectedCycles: 5})
	})
	t.Run("IGN absolute,X crossing a page", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x1c, 0xff, 0x02}, x: 1, expectedCycles: 5})
	})
	t.Run("SKB", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x80, 0x55}, expectedCycles: 2})
	})
}

func TestCPU_IndirectYPenalty(t *testing.T) {
	c, bus := newTestCPU(0xb1, 0x10, 0xb1, 0x10)
	bus.load(0x0010, 0xff, 0x02)
	bus.load(0x0300, 0x42)

	c.Y = 0
	assert.Equal(t, 5, mustStep(t, c, bus))

	c.Y = 1
	assert.Equal(t, 6, mustStep(t, c, bus))
	assert.Equal(t, uint8(0x42), c.A)
}

func TestCPU_ZeroPageXWraps(t *testing.T) {
	c, bus := newTestCPU(0xb5, 0xff)
	bus.load(0x0001, 0x42)
	bus.load(0x0101, 0x99)
	c.X = 2

	assert.Equal(t, 4, mustStep(t, c, bus))
	assert.Equal(t, uint8(0x42), c.A)
}

func TestCPU_IndirectXPointerWraps(t *testing.T) {
	c, bus := newTestCPU(0xa1, 0xfe)
	// pointer at $FF/$00
	bus.load(0x00ff, 0x34)
	bus.load(0x0000, 0x12)
	bus.load(0x1234, 0x77)
	c.X = 1

	mustStep(t, c, bus)
	assert.Equal(t, uint8(0x77), c.A)
}

func TestCPU_JMPIndirectPageBug(t *testing.T) {
	c, bus := newTestCPU(0x6c, 0xff, 0x02)
	bus.load(0x02ff, 0x34)
	bus.load(0x0200, 0x12)
	bus.load(0x0300, 0x56)

	assert.Equal(t, 5, mustStep(t, c, bus))
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestCPU_Branch(t *testing.T) {
	type testArgs struct {
		at             uint16
		program        []uint8
		zero           bool
		expectedPC     uint16
		expectedCycles int
	}

	testDo := func(t *testing.T, in testArgs) {
		c, bus := newTestCPU()
		bus.load(in.at, in.program...)
		c.PC = in.at
		c.P.Set(FlagZ, in.zero)

		assert.Equal(t, in.expectedCycles, mustStep(t, c, bus))
		assert.Equal(t, in.expectedPC, c.PC)
	}

	t.Run("not taken", func(t *testing.T) {
		testDo(t, testArgs{at: 0x8000, program: []uint8{0xd0, 0x02}, zero: true, expectedPC: 0x8002, expectedCycles: 2})
	})
	t.Run("taken", func(t *testing.T) {
		testDo(t, testArgs{at: 0x8000, program: []uint8{0xd0, 0x02}, expectedPC: 0x8004, expectedCycles: 3})
	})
	t.Run("taken forward to another page", func(t *testing.T) {
		testDo(t, testArgs{at: 0x80f0, program: []uint8{0xd0, 0x20}, expectedPC: 0x8112, expectedCycles: 4})
	})
	t.Run("taken backward to another page", func(t *testing.T) {
		testDo(t, testArgs{at: 0x8000, program: []uint8{0xd0, 0xfc}, expectedPC: 0x7ffe, expectedCycles: 4})
	})
}

func TestCPU_ADC(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		initP        Status
		expectedA    uint8
		expectedP    Status
	}

	testDo := func(t *testing.T, in testArgs) {
		c, bus := newTestCPU(0x69, in.operandValue)
		c.A = in.initA
		c.P = in.initP

		mustStep(t, c, bus)

		assert.Equal(t, in.expectedA, c.A, "A register")
		assert.Equal(t, in.expectedP, c.P, "P register")
	}

	t.Run("zero result, no carry", func(t *testing.T) {
		testDo(t, testArgs{expectedP: FlagZ})
	})

	t.Run("simple addition, no carry", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x10, operandValue: 0x20, expectedA: 0x30})
	})

	t.Run("overflow with carry set", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operandValue: 0x01, expectedA: 0, expectedP: FlagZ | FlagC})
	})

	t.Run("negative result with overflow", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x7f, operandValue: 0x01, expectedA: 0x80, expectedP: FlagN | FlagV})
	})

	t.Run("addition with carry in, result is negative", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x50, operandValue: 0x50, initP: FlagC, expectedA: 0xa1, expectedP: FlagN | FlagV})
	})

	t.Run("overflow with carry in, result is positive", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operandValue: 0x01, initP: FlagC, expectedA: 0x01, expectedP: FlagC})
	})

	t.Run("addition with carry in, zero result", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operandValue: 0x00, initP: FlagC, expectedA: 0x00, expectedP: FlagZ | FlagC})
	})

	t.Run("decimal flag is ignored", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x09, operandValue: 0x01, initP: FlagD, expectedA: 0x0a, expectedP: FlagD})
	})
}

func TestCPU_SBC(t *testing.T) {
	type testArgs struct {
		initA     uint8
		value     uint8
		initP     Status
		expectedA uint8
		expectedP Status
	}

	testDo := func(t *testing.T, opcode uint8, in testArgs) {
		c, bus := newTestCPU(opcode, in.value)
		c.A = in.initA
		c.P = in.initP

		mustStep(t, c, bus)

		assert.Equal(t, in.expectedA, c.A, "A register")
		assert.Equal(t, in.expectedP, c.P, "P register")
	}

	for _, opcode := range []uint8{0xe9, 0xeb} {
		t.Run("no borrow", func(t *testing.T) {
			testDo(t, opcode, testArgs{initA: 0x50, value: 0x30, initP: FlagC, expectedA: 0x20, expectedP: FlagC})
		})
		t.Run("borrow", func(t *testing.T) {
			testDo(t, opcode, testArgs{initA: 0x50, value: 0xf0, initP: FlagC, expectedA: 0x60})
		})
		t.Run("signed overflow", func(t *testing.T) {
			testDo(t, opcode, testArgs{initA: 0xd0, value: 0x70, initP: FlagC, expectedA: 0x60, expectedP: FlagC | FlagV})
		})
		t.Run("borrow in", func(t *testing.T) {
			testDo(t, opcode, testArgs{initA: 0x01, value: 0x01, expectedA: 0xff, expectedP: FlagN})
		})
	}
}

func TestCPU_Compare(t *testing.T) {
	testDo := func(t *testing.T, program []uint8, a, x, y uint8, expectedP Status) {
		c, bus := newTestCPU(program...)
		c.A, c.X, c.Y = a, x, y
		c.P = 0
		mustStep(t, c, bus)
		assert.Equal(t, expectedP, c.P)
	}

	t.Run("CMP equal", func(t *testing.T) { testDo(t, []uint8{0xc9, 0x42}, 0x42, 0, 0, FlagZ|FlagC) })
	t.Run("CMP greater", func(t *testing.T) { testDo(t, []uint8{0xc9, 0x01}, 0x42, 0, 0, FlagC) })
	t.Run("CMP less", func(t *testing.T) { testDo(t, []uint8{0xc9, 0x43}, 0x42, 0, 0, FlagN) })
	t.Run("CPX", func(t *testing.T) { testDo(t, []uint8{0xe0, 0x10}, 0, 0x10, 0, FlagZ|FlagC) })
	t.Run("CPY", func(t *testing.T) { testDo(t, []uint8{0xc0, 0x10}, 0, 0, 0x0f, FlagN) })
}

func TestCPU_ShiftsAndRotates(t *testing.T) {
	type testArgs struct {
		program   []uint8
		initA     uint8
		initMem   uint8
		initP     Status
		expectedA uint8
		expected  uint8 // value at $10
		expectedP Status
	}

	testDo := func(t *testing.T, in testArgs) {
		c, bus := newTestCPU(in.program...)
		bus.load(0x0010, in.initMem)
		c.A = in.initA
		c.P = in.initP

		mustStep(t, c, bus)

		assert.Equal(t, in.expectedA, c.A, "A register")
		assert.Equal(t, in.expected, bus.data[0x0010], "memory")
		assert.Equal(t, in.expectedP, c.P, "P register")
	}

	t.Run("ASL A", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x0a}, initA: 0x81, expectedA: 0x02, expectedP: FlagC})
	})
	t.Run("LSR A", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x4a}, initA: 0x01, expectedA: 0x00, expectedP: FlagC | FlagZ})
	})
	t.Run("ROL zero page", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x26, 0x10}, initMem: 0x40, initP: FlagC, expected: 0x81, expectedP: FlagN})
	})
	t.Run("ROR zero page", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x66, 0x10}, initMem: 0x01, initP: FlagC, expected: 0x80, expectedP: FlagN | FlagC})
	})
}

func TestCPU_BIT(t *testing.T) {
	c, bus := newTestCPU(0x24, 0x10)
	bus.load(0x0010, 0xc0)
	c.A = 0x01
	c.P = 0

	mustStep(t, c, bus)
	assert.Equal(t, FlagZ|FlagN|FlagV, c.P)
}

func TestCPU_IncDec(t *testing.T) {
	c, bus := newTestCPU(0xe6, 0x10, 0xc6, 0x11, 0xe8, 0x88)
	bus.load(0x0010, 0xff, 0x00)
	c.X = 0x7f
	c.Y = 0x00

	assert.Equal(t, 5, mustStep(t, c, bus))
	assert.Equal(t, uint8(0x00), bus.data[0x0010])
	assert.True(t, c.P.Contains(FlagZ))

	mustStep(t, c, bus)
	assert.Equal(t, uint8(0xff), bus.data[0x0011])
	assert.True(t, c.P.Contains(FlagN))

	mustStep(t, c, bus)
	assert.Equal(t, uint8(0x80), c.X)
	assert.True(t, c.P.Contains(FlagN))

	mustStep(t, c, bus)
	assert.Equal(t, uint8(0xff), c.Y)
}

func TestCPU_StackRoundTrip(t *testing.T) {
	// PHA, LDA #0, PLA
	c, bus := newTestCPU(0x48, 0xa9, 0x00, 0x68)
	c.A = 0x42

	assert.Equal(t, 3, mustStep(t, c, bus))
	assert.Equal(t, uint16(0x01fc), c.SP)
	assert.Equal(t, uint8(0x42), bus.data[0x01fd])

	mustStep(t, c, bus)
	assert.Equal(t, uint8(0), c.A)

	assert.Equal(t, 4, mustStep(t, c, bus))
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint16(0x01fd), c.SP)
	assert.False(t, c.P.Contains(FlagZ))
}

func TestCPU_StackWrapsInsidePageOne(t *testing.T) {
	c, bus := newTestCPU(0x48, 0x68)
	c.SP = 0x0100
	c.A = 0x99

	mustStep(t, c, bus)
	assert.Equal(t, uint8(0x99), bus.data[0x0100])
	assert.Equal(t, uint16(0x01ff), c.SP)

	mustStep(t, c, bus)
	assert.Equal(t, uint16(0x0100), c.SP)
}

func TestCPU_StatusRoundTrip(t *testing.T) {
	t.Run("PHP then PLP", func(t *testing.T) {
		c, bus := newTestCPU(0x08, 0x28)
		c.P = FlagN | FlagV | FlagU | FlagD | FlagC

		mustStep(t, c, bus)
		assert.Equal(t, uint8(0xf9), bus.data[0x01fd], "pushed with B and U")

		c.P = 0
		assert.Equal(t, 4, mustStep(t, c, bus))
		assert.Equal(t, FlagN|FlagV|FlagU|FlagD|FlagC, c.P)
	})

	t.Run("PLP then PHP", func(t *testing.T) {
		c, bus := newTestCPU(0x28, 0x08)
		bus.load(0x01fe, 0xff)

		mustStep(t, c, bus)
		assert.Equal(t, Status(0xef), c.P, "B is not a real flag")

		mustStep(t, c, bus)
		assert.Equal(t, uint8(0xff), bus.data[0x01fe])
	})
}

func TestCPU_Transfers(t *testing.T) {
	t.Run("TXS does not touch flags", func(t *testing.T) {
		c, bus := newTestCPU(0x9a)
		c.X = 0x00
		mustStep(t, c, bus)
		assert.Equal(t, uint16(0x0100), c.SP)
		assert.Equal(t, FlagU, c.P)
	})

	t.Run("TSX copies the low byte", func(t *testing.T) {
		c, bus := newTestCPU(0xba)
		c.SP = 0x01f0
		mustStep(t, c, bus)
		assert.Equal(t, uint8(0xf0), c.X)
		assert.True(t, c.P.Contains(FlagN))
	})

	t.Run("TAX sets flags from X", func(t *testing.T) {
		c, bus := newTestCPU(0xaa)
		c.A = 0
		c.X = 0x10
		mustStep(t, c, bus)
		assert.Equal(t, uint8(0), c.X)
		assert.True(t, c.P.Contains(FlagZ))
	})

	t.Run("TYA", func(t *testing.T) {
		c, bus := newTestCPU(0x98)
		c.Y = 0x80
		mustStep(t, c, bus)
		assert.Equal(t, uint8(0x80), c.A)
		assert.True(t, c.P.Contains(FlagN))
	})
}

func TestCPU_JSRAndRTS(t *testing.T) {
	c, bus := newTestCPU(0x20, 0x00, 0x90)
	bus.load(0x9000, 0x60)

	assert.Equal(t, 6, mustStep(t, c, bus))
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, uint16(0x01fb), c.SP)
	assert.Equal(t, uint8(0x80), bus.data[0x01fd])
	assert.Equal(t, uint8(0x02), bus.data[0x01fc])

	assert.Equal(t, 6, mustStep(t, c, bus))
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, uint16(0x01fd), c.SP)
}

func TestCPU_BRKAndRTI(t *testing.T) {
	c, bus := newTestCPU(0x00)
	bus.load(irqVector, 0x00, 0x90)
	bus.load(0x9000, 0x40)
	c.P = FlagU | FlagC

	mustStep(t, c, bus)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, uint16(0x01fa), c.SP)
	assert.Equal(t, uint8(0x80), bus.data[0x01fd])
	assert.Equal(t, uint8(0x02), bus.data[0x01fc])
	assert.Equal(t, uint8(0x31), bus.data[0x01fb])
	assert.True(t, c.P.Contains(FlagI))

	assert.Equal(t, 6, mustStep(t, c, bus))
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.Equal(t, FlagU|FlagC, c.P)
}

func TestCPU_Reset(t *testing.T) {
	bus := &ramBus{}
	bus.load(resetVector, 0x00, 0x80)

	c := NewCPU()
	c.A = 1
	c.Reset(bus)

	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint16(0x01fd), c.SP)
	assert.Equal(t, FlagU|FlagI, c.P)
	assert.Equal(t, uint8(0), c.A)
	assert.Equal(t, uint64(7), c.Cycles())
}

func TestCPU_Interrupts(t *testing.T) {
	t.Run("NMI", func(t *testing.T) {
		c, bus := newTestCPU()
		bus.load(nmiVector, 0x00, 0x90)
		c.PC = 0x8123
		c.P = FlagU | FlagC | FlagI

		n, err := c.NMI(bus)
		require.NoError(t, err)
		assert.Equal(t, 7, n)
		assert.Equal(t, uint16(0x9000), c.PC)
		assert.Equal(t, uint8(0x81), bus.data[0x01fd])
		assert.Equal(t, uint8(0x23), bus.data[0x01fc])
		assert.Equal(t, uint8(0x25), bus.data[0x01fb], "B clear on the stack")
	})

	t.Run("IRQ masked", func(t *testing.T) {
		c, bus := newTestCPU()
		c.P = FlagU | FlagI

		n, err := c.IRQ(bus)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, programStart, c.PC)
	})

	t.Run("IRQ", func(t *testing.T) {
		c, bus := newTestCPU()
		bus.load(irqVector, 0x34, 0x12)

		n, err := c.IRQ(bus)
		require.NoError(t, err)
		assert.Equal(t, 7, n)
		assert.Equal(t, uint16(0x1234), c.PC)
		assert.True(t, c.P.Contains(FlagI))
	})
}

func TestCPU_Jam(t *testing.T) {
	for _, opcode := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2} {
		c, bus := newTestCPU(opcode)

		_, err := c.Step(bus)
		require.ErrorIs(t, err, ErrJammed)

		var execErr *ExecError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, opcode, execErr.Opcode)
		assert.Equal(t, programStart, execErr.PC)
		assert.True(t, c.Jammed())

		_, err = c.Step(bus)
		assert.ErrorIs(t, err, ErrJammed, "stays jammed")

		bus.load(resetVector, 0x00, 0x80)
		c.Reset(bus)
		assert.False(t, c.Jammed())
	}
}

func TestCPU_JammedStepDoesNotTouchBus(t *testing.T) {
	bus := &busMock{}
	bus.On("Read8", uint16(0x2000)).Return(uint8(0x02)).Once()

	c := NewCPU()
	c.PC = 0x2000

	_, err := c.Step(bus)
	require.ErrorIs(t, err, ErrJammed)

	for i := 0; i < 3; i++ {
		n, err := c.Step(bus)
		require.ErrorIs(t, err, ErrJammed)
		assert.Zero(t, n)

		var execErr *ExecError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, uint8(0x02), execErr.Opcode)
		assert.Equal(t, uint16(0x2001), execErr.PC)
	}
	bus.AssertExpectations(t)
	bus.AssertNumberOfCalls(t, "Read8", 1)
}

func TestCPU_WriteErrorIsFatal(t *testing.T) {
	errRejected := errors.New("rejected")
	c, bus := newTestCPU(0x8d, 0x00, 0x02)
	bus.failAt = map[uint16]error{0x0200: errRejected}
	c.A = 0x42

	_, err := c.Step(bus)
	require.ErrorIs(t, err, errRejected)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, uint8(0x8d), execErr.Opcode)
	assert.Equal(t, uint16(0x0200), execErr.Addr)
	assert.Contains(t, err.Error(), "$8000")
}

func TestCPU_StoreDoesNotReadTarget(t *testing.T) {
	bus := &busMock{}
	bus.On("Read8", uint16(0x8000)).Return(uint8(0x8d))
	bus.On("Read16", uint16(0x8001)).Return(uint16(0x2007))
	bus.On("Write8", uint16(0x2007), uint8(0x42)).Return(nil)

	c := NewCPU()
	c.PC = 0x8000
	c.A = 0x42

	n, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	bus.AssertExpectations(t)
	bus.AssertNotCalled(t, "Read8", uint16(0x2007))
}

func TestCPU_ReadDiscardNOPTouchesTarget(t *testing.T) {
	bus := &busMock{}
	bus.On("Read8", uint16(0x8000)).Return(uint8(0x0c))
	bus.On("Read16", uint16(0x8001)).Return(uint16(0x2002))
	bus.On("Read8", uint16(0x2002)).Return(uint8(0x80))

	c := NewCPU()
	c.PC = 0x8000

	n, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, uint16(0x8003), c.PC)
	bus.AssertExpectations(t)
}

func TestCPU_Undocumented(t *testing.T) {
	type testArgs struct {
		program   []uint8
		a, x, y   uint8
		initP     Status
		initMem   uint8 // value at $10
		expectedA uint8
		expectedX uint8
		expected  uint8 // value at $10
		expectedP Status
	}

	testDo := func(t *testing.T, in testArgs) {
		c, bus := newTestCPU(in.program...)
		bus.load(0x0010, in.initMem)
		c.A, c.X, c.Y = in.a, in.x, in.y
		c.P = in.initP

		mustStep(t, c, bus)

		assert.Equal(t, in.expectedA, c.A, "A register")
		assert.Equal(t, in.expectedX, c.X, "X register")
		assert.Equal(t, in.expected, bus.data[0x0010], "memory")
		assert.Equal(t, in.expectedP, c.P, "P register")
	}

	t.Run("LAX", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xa7, 0x10}, initMem: 0x80, expectedA: 0x80, expectedX: 0x80, expected: 0x80, expectedP: FlagN})
	})
	t.Run("SAX", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x87, 0x10}, a: 0xf0, x: 0x3c, expectedA: 0xf0, expectedX: 0x3c, expected: 0x30})
	})
	t.Run("DCP", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xc7, 0x10}, a: 0x42, initMem: 0x43, expectedA: 0x42, expected: 0x42, expectedP: FlagZ | FlagC})
	})
	t.Run("ISC", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xe7, 0x10}, a: 0x20, initMem: 0x0f, initP: FlagC, expectedA: 0x10, expected: 0x10, expectedP: FlagC})
	})
	t.Run("SLO", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x07, 0x10}, a: 0x02, initMem: 0x81, expectedA: 0x02, expected: 0x02, expectedP: FlagC})
	})
	t.Run("SRE", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x47, 0x10}, a: 0x01, initMem: 0x03, expectedA: 0x00, expected: 0x01, expectedP: FlagC | FlagZ})
	})
	t.Run("RLA", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x27, 0x10}, a: 0xff, initMem: 0x80, initP: FlagC, expectedA: 0x01, expected: 0x01, expectedP: FlagC})
	})
	t.Run("RRA", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x67, 0x10}, a: 0x10, initMem: 0x02, expectedA: 0x11, expected: 0x01})
	})
	t.Run("ANC", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x0b, 0x80}, a: 0xff, expectedA: 0x80, expectedP: FlagN | FlagC})
	})
	t.Run("ALR", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x4b, 0x03}, a: 0xff, expectedA: 0x01, expectedP: FlagC})
	})
	t.Run("ARR", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x6b, 0xff}, a: 0xff, initP: FlagC, expectedA: 0xff, expectedP: FlagN | FlagC})
	})
	t.Run("AXS", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xcb, 0x05}, a: 0x0f, x: 0xff, expectedA: 0x0f, expectedX: 0x0a, expectedP: FlagC})
	})
	t.Run("LXA", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0xab, 0x0f}, a: 0x00, expectedA: 0x0e, expectedX: 0x0e})
	})
	t.Run("ANE", func(t *testing.T) {
		testDo(t, testArgs{program: []uint8{0x8b, 0xff}, a: 0x00, x: 0x0f, expectedA: 0x0e, expectedX: 0x0f})
	})
}

func TestCPU_SHX(t *testing.T) {
	t.Run("same page", func(t *testing.T) {
		c, bus := newTestCPU(0x9e, 0xf0, 0x02)
		c.X = 0xff
		c.Y = 0x05

		assert.Equal(t, 5, mustStep(t, c, bus))
		assert.Equal(t, uint8(0x03), bus.data[0x02f5])
	})

	t.Run("page crossed replaces the high byte", func(t *testing.T) {
		c, bus := newTestCPU(0x9e, 0xff, 0x02)
		c.X = 0x01
		c.Y = 0x01

		assert.Equal(t, 5, mustStep(t, c, bus))
		assert.Equal(t, uint8(0x01), bus.data[0x0100])
		assert.Equal(t, uint8(0x00), bus.data[0x0300])
	})
}

func TestCPU_LAS(t *testing.T) {
	c, bus := newTestCPU(0xbb, 0x00, 0x02)
	bus.load(0x0200, 0xf3)
	c.SP = 0x01f0

	assert.Equal(t, 4, mustStep(t, c, bus))
	assert.Equal(t, uint8(0xf0), c.A)
	assert.Equal(t, uint8(0xf0), c.X)
	assert.Equal(t, uint16(0x01f0), c.SP)
	assert.True(t, c.P.Contains(FlagN))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "nv-bdizc", Status(0).String())
	assert.Equal(t, "Nv-bdIzC", (FlagN | FlagI | FlagC).String())
	assert.Equal(t, "NV-BDIZC", Status(0xff).String())
}
