package bus

import (
	"fmt"

	"github.com/nevisdale/nescore/internal/ppu"
)

// CPU memory map:
//
// $0000-$07FF: Internal RAM
//
//	This is the primary working RAM of the NES.
//	It is 2KB in size and can store variables, stack, and other temporary data.
//
// $0800-$1FFF: Mirrors of $0000-$07FF
//
//	Any write to these addresses will affect the corresponding address in the range $0000-$07FF.
//
// $2000-$2007: PPU Registers
//
//	$2000: PPUCTRL   (write)
//	$2001: PPUMASK   (write)
//	$2002: PPUSTATUS (read)
//	$2003: OAMADDR   (write)
//	$2004: OAMDATA   (read/write)
//	$2005: PPUSCROLL (write)
//	$2006: PPUADDR   (write)
//	$2007: PPUDATA   (read/write)
//
// $2008-$3FFF: Mirrors of $2000-$2007 (every 8 bytes)
//
// $4000-$7FFF: APU, I/O and cartridge RAM. Not mapped: reads return 0, writes are ignored.
//
// $8000-$FFFF: PRG-ROM. A 16 KB image is mirrored into $C000-$FFFF.
const (
	ramSize   = 0x0800
	ramEnd    = 0x2000
	ppuEnd    = 0x4000
	prgStart  = 0x8000
	ppuPorts  = 0x0007
	ramMirror = ramSize - 1
)

// Bus routes CPU memory accesses. It owns the PPU: nothing outside
// the bus holds a reference to it.
type Bus struct {
	ram [ramSize]uint8
	prg []uint8
	ppu *ppu.PPU
}

// New builds the bus together with a PPU wired to the cartridge CHR ROM.
func New(prg, chr []uint8, m ppu.Mirroring) *Bus {
	return &Bus{
		prg: prg,
		ppu: ppu.New(chr, m),
	}
}

func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr < ramEnd:
		return b.ram[addr&ramMirror]
	case addr < ppuEnd:
		return b.readPPU(addr & ppuPorts)
	case addr >= prgStart:
		return b.readPRG(addr)
	}
	return 0
}

// Read16 reads a little-endian word with two Read8 calls.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return lo | hi<<8
}

func (b *Bus) Write8(addr uint16, data uint8) error {
	switch {
	case addr < ramEnd:
		b.ram[addr&ramMirror] = data
	case addr < ppuEnd:
		if err := b.writePPU(addr&ppuPorts, data); err != nil {
			return fmt.Errorf("bus: write $%04X: %w", addr, err)
		}
	}
	return nil
}

func (b *Bus) readPRG(addr uint16) uint8 {
	if len(b.prg) == 0 {
		return 0
	}
	return b.prg[int(addr-prgStart)%len(b.prg)]
}

func (b *Bus) readPPU(port uint16) uint8 {
	switch port {
	case 2:
		return b.ppu.ReadStatus()
	case 4:
		return b.ppu.ReadOAMData()
	case 7:
		return b.ppu.ReadData()
	}
	// write-only port
	return b.ppu.IOLatch()
}

func (b *Bus) writePPU(port uint16, data uint8) error {
	switch port {
	case 0:
		b.ppu.WriteControl(data)
	case 1:
		b.ppu.WriteMask(data)
	case 3:
		b.ppu.WriteOAMAddr(data)
	case 4:
		b.ppu.WriteOAMData(data)
	case 5:
		b.ppu.WriteScroll(data)
	case 6:
		b.ppu.WriteAddr(data)
	case 7:
		return b.ppu.WriteData(data)
	}
	return nil
}

// Tick advances the PPU by the dots matching the given CPU cycles.
func (b *Bus) Tick(cpuCycles int) {
	b.ppu.Tick(cpuCycles * 3)
}

// PollNMI reports and acknowledges a pending PPU NMI.
func (b *Bus) PollNMI() bool {
	return b.ppu.PollNMI()
}

// Frame is the number of frames the PPU has completed.
func (b *Bus) Frame() uint64 {
	return b.ppu.Frame()
}

// PPUState returns a copy of the PPU registers.
func (b *Bus) PPUState() ppu.State {
	return b.ppu.State()
}

// Peek8 reads memory without side effects: PPU ports read back the I/O latch.
func (b *Bus) Peek8(addr uint16) uint8 {
	if addr >= ramEnd && addr < ppuEnd {
		return b.ppu.IOLatch()
	}
	return b.Read8(addr)
}

// Peeker adapts Peek8 to a plain Read8 reader, e.g. for the disassembler.
type Peeker struct {
	b *Bus
}

func (b *Bus) Peeker() Peeker {
	return Peeker{b: b}
}

func (p Peeker) Read8(addr uint16) uint8 {
	return p.b.Peek8(addr)
}
