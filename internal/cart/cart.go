package cart

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nevisdale/nescore/internal/ppu"
)

const (
	inesMagic        = 0x1a53454e // "NES\x1a"
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	trainerSizeBytes = 512
)

var (
	ErrBadMagic       = errors.New("not an iNES image")
	ErrExtendedHeader = errors.New("extended header is not supported")
	ErrTruncated      = errors.New("image is truncated")
)

// Cart is a parsed iNES image. Only the ROM contents are kept:
// there is no mapper hardware beyond a flat image.
type Cart struct {
	PRG       []uint8
	CHR       []uint8
	Mirroring ppu.Mirroring
	MapperID  uint8
}

type header struct {
	Magic      uint32
	PrgRomSize uint8
	ChrRomSize uint8
	Flags6     uint8
	Flags7     uint8
	_          [8]uint8 // unused
}

// Load reads a .nes file.
// Supported NES format: iNES
func Load(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	c, err := Parse(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse reads an iNES image from r.
func Parse(r io.Reader) (*Cart, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("couldn't read the header: %w", truncated(err))
	}
	if h.Magic != inesMagic {
		return nil, ErrBadMagic
	}
	if h.Flags7&0x80 != 0 {
		return nil, ErrExtendedHeader
	}

	// bit 2 of flags6 is the trainer flag
	if h.Flags6&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSizeBytes); err != nil {
			return nil, fmt.Errorf("couldn't skip the trainer: %w", truncated(err))
		}
	}

	// flag6 and flag7 contain part of the mapper ID in 4 high bits
	// flag6: lower 4 bits of mapper ID
	// flag7: upper 4 bits of mapper ID
	mapperID := (h.Flags7 & 0xf0) | (h.Flags6 >> 4)
	if mapperID != 0 {
		log.Printf("cart: mapper %d is not emulated, using a flat image", mapperID)
	}

	c := &Cart{
		PRG:       make([]uint8, int(h.PrgRomSize)*prgBankSizeBytes),
		CHR:       make([]uint8, int(h.ChrRomSize)*chrBankSizeBytes),
		Mirroring: mirroring(h.Flags6),
		MapperID:  mapperID,
	}

	if _, err := io.ReadFull(r, c.PRG); err != nil {
		return nil, fmt.Errorf("couldn't read PRG ROM: %w", truncated(err))
	}
	if _, err := io.ReadFull(r, c.CHR); err != nil {
		return nil, fmt.Errorf("couldn't read CHR ROM: %w", truncated(err))
	}
	return c, nil
}

func mirroring(flags6 uint8) ppu.Mirroring {
	switch {
	case flags6&0x08 != 0:
		return ppu.FourScreen
	case flags6&0x01 != 0:
		return ppu.Vertical
	}
	return ppu.Horizontal
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}
