package host

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Roms-lab/Nexus/internal/nes"
)

// Tab - show debug info
// P - pause
// R - one step and stop
// C - cycle debug palette

type UI struct {
	emu    *nes.Emulator
	disasm map[uint16]string

	palette    uint8
	showDebug  bool
	singleStep bool
	screen     [256 * 240]uint32
}

func New(emu *nes.Emulator) *UI {
	ui := &UI{
		emu:    emu,
		disasm: emu.Disassemble(),
	}
	emu.SetVideoSink(func(frame *[256 * 240]uint32) {
		ui.screen = *frame
	})
	return ui
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ui.showDebug = !ui.showDebug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ui.palette++
		if ui.palette > 7 {
			ui.palette = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.emu.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.singleStep = true
	}

	ui.pollButtons()

	if ui.singleStep {
		ui.emu.StepInstruction()
		ui.singleStep = false
		return nil
	}

	ui.emu.RunFrame()
	return nil
}

func (ui *UI) pollButtons() {
	keys := map[ebiten.Key]nes.Button{
		ebiten.KeyZ:         nes.ButtonA,
		ebiten.KeyX:         nes.ButtonB,
		ebiten.KeyEnter:     nes.ButtonStart,
		ebiten.KeyShiftLeft: nes.ButtonSelect,
		ebiten.KeyUp:        nes.ButtonUp,
		ebiten.KeyDown:      nes.ButtonDown,
		ebiten.KeyLeft:      nes.ButtonLeft,
		ebiten.KeyRight:     nes.ButtonRight,
	}
	for key, button := range keys {
		ui.emu.SetButton(0, button, ebiten.IsKeyPressed(key))
	}
}

func (ui *UI) Draw(screen *ebiten.Image) {
	img := ebiten.NewImage(gameScreenWidth, gameScreenHeight)
	for y := 0; y < gameScreenHeight; y++ {
		for x := 0; x < gameScreenWidth; x++ {
			img.Set(x, y, rgbaFromPacked(ui.screen[y*gameScreenWidth+x]))
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gameScreenScale, gameScreenScale)
	screen.DrawImage(img, op)

	if ui.showDebug {
		ui.drawDebug(screen)
	}
}

func (ui *UI) drawDebug(screen *ebiten.Image) {
	info := ui.emu.DebugInfo()
	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " PALETTE: %d\n", ui.palette)
	fmt.Fprintf(&infoStr, " ILLEGAL OPS: %d\n", ui.emu.IllegalOpcodeCount())
	if ui.emu.Paused() {
		infoStr.WriteString(" PAUSED\n")
	}
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)

	for i := max(0, info.PC-7); i < info.PC; i++ {
		infoStr.WriteString(" " + ui.disasm[i] + "\n")
	}
	infoStr.WriteString("*" + ui.disasm[info.PC] + "\n")
	for i := info.PC + 1; i < min(0xFFFF, info.PC+7); i++ {
		infoStr.WriteString(" " + ui.disasm[i] + "\n")
	}

	debugScreenOffsetX := float32(gameScreenWidth * gameScreenScale)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, debugScreenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)

	for i := 0; i < 8; i++ {
		paletteImg := ebiten.NewImage(4, 1)
		for c := 0; c < 4; c++ {
			paletteImg.Set(c, 0, rgbaFromPacked(ui.emu.GetColorFromPalette(uint8(i), uint8(c))))
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(4, 4)
		op.GeoM.Translate(float64(debugScreenOffsetX)+10+float64(i*35), debugScreenHeight-128-20)
		screen.DrawImage(paletteImg, op)
	}

	for i := 0; i < 2; i++ {
		table := ui.emu.PatternTable(ui.palette, uint8(i))
		tableImg := ebiten.NewImage(128, 128)
		for y := 0; y < 128; y++ {
			for x := 0; x < 128; x++ {
				tableImg.Set(x, y, rgbaFromPacked(table[y*128+x]))
			}
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(debugScreenOffsetX)+10+(float64(i)*(128+5)), debugScreenHeight-128-10)
		screen.DrawImage(tableImg, op)
	}
}

// rgbaFromPacked unpacks the PPU's 0xRRGGBBAA palette format into an
// ebiten-compatible color.
func rgbaFromPacked(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

const (
	gameScreenScale  = 2
	gameScreenWidth  = 256
	gameScreenHeight = 240

	debugScreenWidth  = 286
	debugScreenHeight = gameScreenHeight * gameScreenScale
)

func (ui *UI) Layout(_, _ int) (int, int) {
	if ui.showDebug {
		return gameScreenWidth*gameScreenScale + debugScreenWidth, gameScreenHeight * gameScreenScale
	}
	return gameScreenWidth * gameScreenScale, gameScreenHeight * gameScreenScale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	screenSizeX, screenSizeY := gameScreenWidth*gameScreenScale+debugScreenWidth, gameScreenHeight*gameScreenScale
	screenSizeX *= 2
	screenSizeY *= 2
	ebiten.SetWindowSize(screenSizeX, screenSizeY)
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
