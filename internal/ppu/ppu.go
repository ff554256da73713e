package ppu

import (
	"errors"
	"fmt"
)

// ErrIllegalWrite is returned when the CPU writes where the PPU has no write path.
var ErrIllegalWrite = errors.New("illegal write")

const (
	oamSize     = 64 * 4
	paletteSize = 0x20

	dotsPerLine   = 341
	linesPerFrame = 262
	vblankLine    = 241
	preRenderLine = 261
)

// PPU address space:
//
//	$0000-$0FFF: Pattern table 0 (CHR ROM)
//	$1000-$1FFF: Pattern table 1 (CHR ROM)
//	$2000-$23FF: Nametable 0
//	$2400-$27FF: Nametable 1
//	$2800-$2BFF: Nametable 2
//	$2C00-$2FFF: Nametable 3
//	$3000-$3EFF: Mirrors of $2000-$2EFF
//	$3F00-$3F1F: Palette RAM indexes
//	$3F20-$3FFF: Mirrors of $3F00-$3F1F
type PPU struct {
	ctrl    Control
	mask    Mask
	status  Status
	scroll  scroll
	addr    vramAddr
	oamAddr uint8

	oam     [oamSize]uint8
	vram    []uint8
	palette [paletteSize]uint8
	chr     []uint8

	mirroring Mirroring

	buffer uint8 // PPUDATA read buffer
	latch  uint8 // I/O latch, the last value driven on the PPU data bus
	nmi    bool

	dot      int
	scanline int
	frame    uint64
}

// New returns a PPU in its power-on state. chr is the cartridge CHR ROM
// and is never written.
func New(chr []uint8, m Mirroring) *PPU {
	return &PPU{
		addr:      newVRAMAddr(),
		vram:      make([]uint8, m.vramSize()),
		chr:       chr,
		mirroring: m,
	}
}

// WriteControl handles a write to $2000.
// Enabling NMI while already in vblank raises NMI immediately.
func (p *PPU) WriteControl(v uint8) {
	p.latch = v
	wasEnabled := p.ctrl.Contains(CtrlNMI)
	p.ctrl = Control(v)
	if !wasEnabled && p.ctrl.Contains(CtrlNMI) && p.status.Contains(StatusVBlank) {
		p.nmi = true
	}
}

// WriteMask handles a write to $2001.
func (p *PPU) WriteMask(v uint8) {
	p.latch = v
	p.mask = Mask(v)
}

// ReadStatus handles a read of $2002. It clears vblank and resets
// both the scroll and the address write latches.
func (p *PPU) ReadStatus() uint8 {
	v := uint8(p.status)&^statusLatchBits | p.latch&statusLatchBits
	p.status.Remove(StatusVBlank)
	p.scroll.reset()
	p.addr.reset()
	p.latch = v
	return v
}

// WriteOAMAddr handles a write to $2003.
func (p *PPU) WriteOAMAddr(v uint8) {
	p.latch = v
	p.oamAddr = v
}

// ReadOAMData handles a read of $2004. Reads do not advance the OAM address.
func (p *PPU) ReadOAMData() uint8 {
	p.latch = p.oam[p.oamAddr]
	return p.latch
}

// WriteOAMData handles a write to $2004.
func (p *PPU) WriteOAMData(v uint8) {
	p.latch = v
	p.oam[p.oamAddr] = v
	p.oamAddr++
}

// WriteScroll handles a write to $2005.
func (p *PPU) WriteScroll(v uint8) {
	p.latch = v
	p.scroll.write(v)
}

// WriteAddr handles a write to $2006.
func (p *PPU) WriteAddr(v uint8) {
	p.latch = v
	p.addr.write(v)
}

// ReadData handles a read of $2007. Everything below the palette is
// returned one read behind through the internal buffer. Palette reads are
// returned directly and refill the buffer from the nametable underneath.
func (p *PPU) ReadData() uint8 {
	addr := p.addr.raw
	p.addr.increment(p.ctrl.Increment())

	var v uint8
	switch {
	case addr < 0x2000:
		v = p.buffer
		p.buffer = p.readCHR(addr)
	case addr < 0x3f00:
		v = p.buffer
		p.buffer = p.vram[p.mirroring.MirrorAddr(addr)]
	default:
		v = p.palette[paletteIndex(addr)]
		p.buffer = p.vram[p.mirroring.MirrorAddr(addr)]
	}
	p.latch = v
	return v
}

// WriteData handles a write to $2007. The address advances even when
// the write is rejected.
func (p *PPU) WriteData(v uint8) error {
	p.latch = v
	addr := p.addr.raw
	p.addr.increment(p.ctrl.Increment())

	switch {
	case addr < 0x2000:
		return fmt.Errorf("%w: CHR ROM at $%04X", ErrIllegalWrite, addr)
	case addr < 0x3f00:
		p.vram[p.mirroring.MirrorAddr(addr)] = v
	default:
		p.palette[paletteIndex(addr)] = v
	}
	return nil
}

func (p *PPU) readCHR(addr uint16) uint8 {
	if int(addr) >= len(p.chr) {
		return 0
	}
	return p.chr[addr]
}

// paletteIndex maps $3F00-$3FFF onto the 32 bytes of palette RAM.
// $3F10/$3F14/$3F18/$3F1C are the backdrop entries $3F00/$3F04/$3F08/$3F0C.
func paletteIndex(addr uint16) uint16 {
	i := addr & 0x1f
	if i&0x13 == 0x10 {
		i &^= 0x10
	}
	return i
}

// IOLatch is what reading a write-only port returns.
func (p *PPU) IOLatch() uint8 {
	return p.latch
}

// PollNMI reports whether NMI was raised since the last call and acknowledges it.
func (p *PPU) PollNMI() bool {
	nmi := p.nmi
	p.nmi = false
	return nmi
}

// Tick advances the PPU by the given number of dots. Only the vblank
// timing is modelled: no pixels are produced.
func (p *PPU) Tick(dots int) {
	for i := 0; i < dots; i++ {
		p.dot++
		if p.dot == dotsPerLine {
			p.dot = 0
			p.scanline++
			if p.scanline == linesPerFrame {
				p.scanline = 0
				p.frame++
			}
		}

		if p.dot != 1 {
			continue
		}
		switch p.scanline {
		case vblankLine:
			p.status.Insert(StatusVBlank)
			if p.ctrl.Contains(CtrlNMI) {
				p.nmi = true
			}
		case preRenderLine:
			p.status.Remove(StatusVBlank | StatusSprite0 | StatusOverflow)
		}
	}
}

// Frame is the number of frames completed since power-on.
func (p *PPU) Frame() uint64 {
	return p.frame
}

// State is a read-only view of the PPU registers for debuggers.
type State struct {
	Ctrl     Control
	Mask     Mask
	Status   Status
	Addr     uint16
	ScrollX  uint8
	ScrollY  uint8
	OAMAddr  uint8
	Scanline int
	Dot      int
	Palette  [paletteSize]uint8
}

// State returns a copy of the registers. It has no side effects.
func (p *PPU) State() State {
	return State{
		Ctrl:     p.ctrl,
		Mask:     p.mask,
		Status:   p.status,
		Addr:     p.addr.raw,
		ScrollX:  p.scroll.x,
		ScrollY:  p.scroll.y,
		OAMAddr:  p.oamAddr,
		Scanline: p.scanline,
		Dot:      p.dot,
		Palette:  p.palette,
	}
}
