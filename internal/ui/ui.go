package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mihyaeru21/nes/internal/nes"
)

// P - pause
// R - one step and stop

type UI struct {
	bus    *nes.Bus
	disasm map[uint16]string
	err    error
}

func New(bus *nes.Bus) *UI {
	return &UI{
		bus:    bus,
		disasm: bus.Disassemble(),
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.bus.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.bus.OneStepAndStop()
	}

	// a fault freezes the display on the last state
	if ui.err != nil {
		return nil
	}
	ui.err = ui.bus.RunFrame()
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	info := ui.bus.DebugInfo()
	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	fmt.Fprintf(&infoStr, " STEPS: %d CYCLES: %d\n", info.Steps, info.Cycles)
	if info.Paused {
		infoStr.WriteString(" PAUSED\n")
	}
	if ui.err != nil {
		fmt.Fprintf(&infoStr, " FAULT: %s\n", ui.err)
	}
	infoStr.WriteString("\n")

	for i := int(info.PC) - 7; i < int(info.PC); i++ {
		if i < 0 {
			continue
		}
		infoStr.WriteString(" " + ui.disasm[uint16(i)] + "\n")
	}
	infoStr.WriteString("*" + ui.disasm[info.PC] + "\n")
	for i := int(info.PC) + 1; i < min(0xffff, int(info.PC)+7); i++ {
		infoStr.WriteString(" " + ui.disasm[uint16(i)] + "\n")
	}

	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), 0, 0)
}

const (
	screenWidth  = 320
	screenHeight = 240
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
