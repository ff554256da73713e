package ppu

// Control is the write-only PPUCTRL register, mapped to $2000.
//
//	7  bit  0
//	---- ----
//	VPHB SINN
//	|||| ||||
//	|||| ||++- Base nametable address
//	|||| ||    (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
//	|||| |+--- VRAM address increment per CPU read/write of PPUDATA
//	|||| |     (0: add 1, going across; 1: add 32, going down)
//	|||| +---- Sprite pattern table address for 8x8 sprites
//	||||       (0: $0000; 1: $1000; ignored in 8x16 mode)
//	|||+------ Background pattern table address (0: $0000; 1: $1000)
//	||+------- Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
//	|+-------- PPU master/slave select
//	+--------- Generate an NMI at the start of vblank (0: off; 1: on)
type Control uint8

const (
	CtrlNametableX Control = 1 << iota
	CtrlNametableY
	CtrlIncrement
	CtrlSpriteTable
	CtrlBackgroundTable
	CtrlSpriteSize
	CtrlMasterSlave
	CtrlNMI
)

func (c Control) Contains(flag Control) bool {
	return c&flag == flag
}

func (c *Control) Insert(flag Control) {
	*c |= flag
}

func (c *Control) Remove(flag Control) {
	*c &= ^flag
}

func (c *Control) Set(flag Control, v bool) {
	if v {
		c.Insert(flag)
		return
	}
	c.Remove(flag)
}

// NametableAddr is the base address of the selected nametable.
func (c Control) NametableAddr() uint16 {
	return 0x2000 + uint16(c&0x03)*0x400
}

// Increment is the step applied to the VRAM address after every PPUDATA access.
func (c Control) Increment() uint16 {
	if c.Contains(CtrlIncrement) {
		return 32
	}
	return 1
}

func (c Control) BackgroundTable() uint16 {
	if c.Contains(CtrlBackgroundTable) {
		return 0x1000
	}
	return 0
}

func (c Control) SpriteTable() uint16 {
	if c.Contains(CtrlSpriteTable) {
		return 0x1000
	}
	return 0
}

// Mask is the write-only PPUMASK register, mapped to $2001.
type Mask uint8

const (
	MaskGreyscale Mask = 1 << iota
	MaskLeftBackground
	MaskLeftSprites
	MaskBackground
	MaskSprites
	MaskEmphasizeRed
	MaskEmphasizeGreen
	MaskEmphasizeBlue
)

func (m Mask) Contains(flag Mask) bool {
	return m&flag == flag
}

func (m *Mask) Insert(flag Mask) {
	*m |= flag
}

func (m *Mask) Remove(flag Mask) {
	*m &= ^flag
}

func (m *Mask) Set(flag Mask, v bool) {
	if v {
		m.Insert(flag)
		return
	}
	m.Remove(flag)
}

// Rendering reports whether background or sprite rendering is enabled.
func (m Mask) Rendering() bool {
	return m&(MaskBackground|MaskSprites) != 0
}

// Status is the read-only PPUSTATUS register, mapped to $2002.
// The low 5 bits are not driven by the PPU: they read back the I/O latch.
type Status uint8

const (
	StatusOverflow  Status = 0x20
	StatusSprite0   Status = 0x40
	StatusVBlank    Status = 0x80
	statusLatchBits        = 0x1f
)

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

// scroll is the write-only PPUSCROLL register, mapped to $2005.
// Writes alternate between x and y.
type scroll struct {
	x, y    uint8
	latched bool // next write goes to y
}

func (s *scroll) write(v uint8) {
	if s.latched {
		s.y = v
	} else {
		s.x = v
	}
	s.latched = !s.latched
}

func (s *scroll) reset() {
	s.latched = false
}

const addrMask = 0x3fff

// vramAddr is the write-only PPUADDR register, mapped to $2006.
// Writes alternate between the high and the low byte.
type vramAddr struct {
	raw uint16
	hi  bool // next write is the high byte
}

func newVRAMAddr() vramAddr {
	return vramAddr{hi: true}
}

func (a *vramAddr) write(v uint8) {
	if a.hi {
		a.raw = a.raw&0x00ff | uint16(v)<<8
	} else {
		a.raw = a.raw&0xff00 | uint16(v)
	}
	a.raw &= addrMask
	a.hi = !a.hi
}

func (a *vramAddr) increment(n uint16) {
	a.raw = (a.raw + n) & addrMask
}

func (a *vramAddr) reset() {
	a.hi = true
}
