package nes

import (
	"log"

	"github.com/nevisdale/nescore/internal/bus"
	"github.com/nevisdale/nescore/internal/cart"
	"github.com/nevisdale/nescore/internal/cpu"
	"github.com/nevisdale/nescore/internal/ppu"
)

// maxFrameCycles bounds StepFrame when the PPU never reaches the next frame.
const maxFrameCycles = 2 * 29781

// Console drives the CPU over the bus: one instruction per Step, the PPU
// catching up afterwards, and a pending NMI serviced before the next one.
type Console struct {
	cpu  *cpu.CPU
	bus  *bus.Bus
	cart *cart.Cart

	Debug bool

	paused   bool
	stepOnce bool
}

func New(c *cart.Cart) *Console {
	con := &Console{
		cpu:  cpu.NewCPU(),
		bus:  bus.New(c.PRG, c.CHR, c.Mirroring),
		cart: c,
	}
	con.Reset()
	return con
}

func (c *Console) Reset() {
	c.cpu.Reset(c.bus)
	c.bus.Tick(7)
	if c.Debug {
		log.Printf("nes: reset, PC=$%04X", c.cpu.PC)
	}
}

// SetPC moves the CPU to addr, e.g. $C000 for nestest automation.
func (c *Console) SetPC(addr uint16) {
	c.cpu.SetPC(addr)
}

// Step executes one instruction and returns the cycles spent,
// including a serviced NMI.
func (c *Console) Step() (int, error) {
	n, err := c.cpu.Step(c.bus)
	if err != nil {
		return 0, err
	}
	c.bus.Tick(n)

	if c.bus.PollNMI() {
		m, err := c.cpu.NMI(c.bus)
		if err != nil {
			return n, err
		}
		if c.Debug {
			log.Printf("nes: NMI at frame %d, PC=$%04X", c.bus.Frame(), c.cpu.PC)
		}
		c.bus.Tick(m)
		n += m
	}
	return n, nil
}

// StepFrame runs instructions until the PPU completes a frame.
func (c *Console) StepFrame() error {
	frame := c.bus.Frame()
	for cycles := 0; c.bus.Frame() == frame && cycles < maxFrameCycles; {
		n, err := c.Step()
		if err != nil {
			return err
		}
		cycles += n
	}
	return nil
}

// Update advances the console by one frame unless paused.
// A requested single step runs exactly one instruction.
func (c *Console) Update() error {
	if c.stepOnce {
		c.stepOnce = false
		_, err := c.Step()
		return err
	}
	if c.paused {
		return nil
	}
	return c.StepFrame()
}

func (c *Console) TogglePause() {
	c.paused = !c.paused
}

func (c *Console) Paused() bool {
	return c.paused
}

// OneStepAndStop pauses the console and executes a single instruction on the next Update.
func (c *Console) OneStepAndStop() {
	c.paused = true
	c.stepOnce = true
}

// Registers returns a copy of the CPU registers.
func (c *Console) Registers() cpu.Registers {
	return c.cpu.Snapshot()
}

func (c *Console) Cycles() uint64 {
	return c.cpu.Cycles()
}

func (c *Console) Frame() uint64 {
	return c.bus.Frame()
}

func (c *Console) PPU() ppu.State {
	return c.bus.PPUState()
}

// CHR is the cartridge CHR ROM.
func (c *Console) CHR() []uint8 {
	return c.cart.CHR
}

// Disassemble decodes count instructions from addr without touching PPU ports.
func (c *Console) Disassemble(addr uint16, count int) []cpu.Line {
	return cpu.DisassembleRange(c.bus.Peeker(), addr, count)
}
