package chr

import (
	"image"
)

const (
	tileBytes    = 16
	tilesPerRow  = 16
	tilesPerBank = 256
	bankBytes    = tilesPerBank * tileBytes

	// TableSize is the width and height in pixels of a rendered pattern table.
	TableSize = tilesPerRow * 8
)

// Tile is an 8x8 tile of 2-bit pixel values, indexed [y][x].
type Tile [8][8]uint8

// DecodeTile decodes tile index of the given bank (0: $0000, 1: $1000).
// Every tile is 16 bytes: 8 bytes of low bit planes followed by 8 bytes of high bit planes.
// Tiles outside of rom decode as blank.
func DecodeTile(rom []uint8, bank, index int) Tile {
	var t Tile
	start := bank*bankBytes + index*tileBytes
	if start < 0 || start+tileBytes > len(rom) {
		return t
	}

	data := rom[start : start+tileBytes]
	for y := 0; y < 8; y++ {
		lo, hi := data[y], data[y+8]
		for x := 7; x >= 0; x-- {
			t[y][x] = (hi&1)<<1 | lo&1
			lo >>= 1
			hi >>= 1
		}
	}
	return t
}

// PatternTable renders the 256 tiles of a bank as a 16x16 grid.
func PatternTable(rom []uint8, bank int, colors Colors) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TableSize, TableSize))
	for i := 0; i < tilesPerBank; i++ {
		t := DecodeTile(rom, bank, i)
		ox, oy := (i%tilesPerRow)*8, (i/tilesPerRow)*8
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetRGBA(ox+x, oy+y, colors[t[y][x]])
			}
		}
	}
	return img
}
