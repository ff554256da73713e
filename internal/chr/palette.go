package chr

import "image/color"

// SystemPalette is the 2C02 master palette, indexed by the 6-bit values
// stored in palette RAM.
var SystemPalette = [64]color.RGBA{
	{92, 92, 92, 255}, {0, 34, 103, 255}, {19, 18, 128, 255}, {46, 6, 126, 255},
	{70, 0, 96, 255}, {83, 2, 49, 255}, {81, 10, 2, 255}, {65, 25, 0, 255},
	{40, 41, 0, 255}, {13, 55, 0, 255}, {0, 62, 0, 255}, {0, 60, 10, 255},
	{0, 49, 59, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{167, 167, 167, 255}, {30, 85, 183, 255}, {63, 61, 218, 255}, {102, 43, 214, 255},
	{136, 34, 172, 255}, {154, 36, 107, 255}, {152, 50, 37, 255}, {129, 71, 0, 255},
	{93, 95, 0, 255}, {54, 115, 0, 255}, {24, 125, 0, 255}, {9, 122, 50, 255},
	{11, 107, 121, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{254, 255, 255, 255}, {106, 167, 255, 255}, {143, 141, 255, 255}, {185, 121, 255, 255},
	{221, 111, 255, 255}, {241, 114, 190, 255}, {238, 129, 115, 255}, {214, 152, 55, 255},
	{176, 178, 24, 255}, {134, 199, 28, 255}, {100, 209, 65, 255}, {82, 206, 129, 255},
	{84, 190, 205, 255}, {69, 69, 69, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{254, 255, 255, 255}, {192, 218, 255, 255}, {208, 207, 255, 255}, {226, 198, 255, 255},
	{241, 194, 255, 255}, {249, 195, 228, 255}, {248, 202, 196, 255}, {238, 212, 169, 255},
	{222, 223, 155, 255}, {204, 231, 157, 255}, {189, 236, 174, 255}, {181, 234, 202, 255},
	{182, 228, 234, 255}, {176, 176, 176, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
}

// Colors is a 4-colour palette, one entry per 2-bit pixel value.
type Colors [4]color.RGBA

// DefaultColors is used when the program has not loaded palette RAM yet.
var DefaultColors = Colors{SystemPalette[0x09], SystemPalette[0x06], SystemPalette[0x1c], SystemPalette[0x33]}

// PaletteColors resolves one of the 8 palettes (0-3 background, 4-7 sprites)
// from palette RAM. Entry 0 of every palette is the shared backdrop.
func PaletteColors(ram [32]uint8, palette int) Colors {
	base := (palette & 0x07) * 4
	var c Colors
	c[0] = SystemPalette[ram[0]&0x3f]
	for i := 1; i < 4; i++ {
		c[i] = SystemPalette[ram[base+i]&0x3f]
	}
	return c
}
