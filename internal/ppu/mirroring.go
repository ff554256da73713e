package ppu

// Mirroring is the way a cartridge wires the 4 logical nametables
// onto the PPU VRAM.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return "unknown"
}

// vramSize is the amount of nametable memory the mirroring mode needs.
// FourScreen cartridges bring their own 2 KB on top of the internal 2 KB.
func (m Mirroring) vramSize() int {
	if m == FourScreen {
		return 0x1000
	}
	return 0x800
}

// MirrorAddr folds a nametable address ($2000-$3EFF) into an index of the VRAM.
//
//	Vertical:   [ A ] [ B ]    Horizontal: [ A ] [ a ]
//	            [ a ] [ b ]                [ B ] [ b ]
func (m Mirroring) MirrorAddr(addr uint16) uint16 {
	// $3000-$3EFF mirrors $2000-$2EFF
	index := (addr & 0x2fff) - 0x2000
	table := index / 0x400

	switch {
	case m == Vertical && (table == 2 || table == 3):
		return index - 0x800
	case m == Horizontal && (table == 1 || table == 2):
		return index - 0x400
	case m == Horizontal && table == 3:
		return index - 0x800
	}
	return index
}
