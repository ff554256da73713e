package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/nescore/internal/chr"
	"github.com/nevisdale/nescore/internal/nes"
)

// Esc - quit
// P - pause
// R - one step and stop
// C - next palette

const (
	tableGap     = 8
	paletteCount = 8
	swatchSize   = 8

	disasmLines = 16

	screenWidth  = 2*chr.TableSize + tableGap
	tablesHeight = chr.TableSize
	infoHeight   = 160 + disasmLines*16
	screenHeight = tablesHeight + swatchSize + infoHeight
)

var backgroundColor = color.RGBA{50, 50, 50, 255}

type UI struct {
	console *nes.Console
	err     error

	palette int
	tables  [2]*ebiten.Image
}

func New(console *nes.Console) *UI {
	return &UI{
		console: console,
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ui.palette = (ui.palette + 1) % paletteCount
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.console.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.console.OneStepAndStop()
	}

	// the window stays open after a fatal error
	if ui.err != nil {
		return nil
	}
	ui.err = ui.console.Update()
	return nil
}

// Err is the fatal error that stopped the console, if any.
func (ui *UI) Err() error {
	return ui.err
}

func (ui *UI) colors() chr.Colors {
	pal := ui.console.PPU().Palette
	if pal == [32]uint8{} {
		return chr.DefaultColors
	}
	return chr.PaletteColors(pal, ui.palette)
}

func (ui *UI) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	colors := ui.colors()
	for bank := 0; bank < 2; bank++ {
		img := chr.PatternTable(ui.console.CHR(), bank, colors)
		if ui.tables[bank] == nil {
			ui.tables[bank] = ebiten.NewImageFromImage(img)
		} else {
			ui.tables[bank].WritePixels(img.Pix)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(bank*(chr.TableSize+tableGap)), 0)
		screen.DrawImage(ui.tables[bank], op)
	}

	for i, c := range colors {
		x := float32(i * swatchSize)
		vector.DrawFilledRect(screen, x, tablesHeight, swatchSize, swatchSize, c, false)
	}

	ebitenutil.DebugPrintAt(screen, ui.info(), 0, tablesHeight+swatchSize)
}

func (ui *UI) info() string {
	regs := ui.console.Registers()
	st := ui.console.PPU()

	var info strings.Builder
	fmt.Fprintf(&info, " FPS: %0.0f  FRAME: %d  CYC: %d\n", ebiten.ActualFPS(), ui.console.Frame(), ui.console.Cycles())
	fmt.Fprintf(&info, " PALETTE: %d\n", ui.palette)
	fmt.Fprintf(&info, " STATUS: %s\n", regs.P)
	fmt.Fprintf(&info, " PC: $%04X  SP: $%02X\n", regs.PC, uint8(regs.SP))
	fmt.Fprintf(&info, " A: $%02X [%03d] X: $%02X [%03d] Y: $%02X [%03d]\n", regs.A, regs.A, regs.X, regs.X, regs.Y, regs.Y)
	fmt.Fprintf(&info, " PPU: CTRL $%02X MASK $%02X STATUS $%02X ADDR $%04X\n", uint8(st.Ctrl), uint8(st.Mask), uint8(st.Status), st.Addr)
	fmt.Fprintf(&info, " SCANLINE: %d DOT: %d\n", st.Scanline, st.Dot)
	if ui.console.Paused() {
		info.WriteString(" PAUSED\n")
	}
	if ui.err != nil {
		fmt.Fprintf(&info, " ERROR: %v\n", ui.err)
	}

	info.WriteString("\n")
	for i, line := range ui.console.Disassemble(regs.PC, disasmLines) {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(&info, "%s$%04X: %s\n", marker, line.Addr, line.Text)
	}
	return info.String()
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the debug window and blocks until it is closed.
func Run(ui *UI, scale int) error {
	ebiten.SetWindowTitle("nestic")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(ui); err != nil {
		return err
	}
	return ui.err
}
