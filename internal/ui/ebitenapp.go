package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/emu"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/ui/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenW    = 480
	screenH    = 320
	lineH      = 14
	charW      = 6
	disasmRows = 10
)

// App is the monitor window: register, disassembly and memory panels over a
// single Machine, driven from ebiten's Update callback.
type App struct {
	cfg     Config
	m       *emu.Machine
	running bool
	memAddr uint16

	// overlay/menu
	showMenu bool
	menuMode string // "main" or "rom"
	menu     view.Menu

	toastMsg   string
	toastUntil time.Time
	fault      string
	quit       bool
}

func NewApp(cfg Config, m *emu.Machine) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(screenW*cfg.Scale, screenH*cfg.Scale)
	return &App{cfg: cfg, m: m, memAddr: cfg.MemStart}
}

func (a *App) Run() error { return ebiten.RunGame(a) }

func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.toggleMenu()
	}
	if a.showMenu {
		a.updateMenu()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.running = !a.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		on := !a.m.Config().Trace
		a.m.SetTrace(on)
		a.toast(fmt.Sprintf("trace %v", on))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		a.memAddr -= uint16(a.cfg.MemRows * view.BytesPerRow)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		a.memAddr += uint16(a.cfg.MemRows * view.BytesPerRow)
	}
	if !a.m.Loaded() || a.fault != "" {
		return nil
	}

	switch {
	case a.running:
		a.guard(func() {
			for i := 0; i < a.cfg.StepsPerTick && a.m.CPU().Running(); i++ {
				a.m.Step()
			}
		})
		if !a.m.CPU().Running() {
			a.running = false
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.guard(a.m.Step)
	}
	return nil
}

// guard runs f and turns a bus or decoder panic into a frozen monitor that
// shows the error instead of tearing the window down.
func (a *App) guard(f func()) {
	defer func() {
		if r := recover(); r != nil {
			a.running = false
			a.fault = fmt.Sprint(r)
		}
	}()
	f()
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x18, 0x20, 0xFF})
	if a.showMenu {
		a.drawMenu(screen)
		return
	}

	y := 4
	title := "no ROM loaded (Esc: menu)"
	if h := a.m.Header(); h != nil {
		title = fmt.Sprintf("%s [%s]", h.Title, h.TypeName())
	}
	ebitenutil.DebugPrintAt(screen, view.Truncate(title, screenW/charW-2), 4, y)
	y += lineH + 4

	if a.m.Loaded() {
		for i, s := range view.Registers(a.m.CPU()) {
			ebitenutil.DebugPrintAt(screen, s, 4, y+i*lineH)
		}
		for i, s := range view.Disassembly(a.m.Bus(), a.m.CPU().PC(), disasmRows) {
			ebitenutil.DebugPrintAt(screen, s, 200, y+i*lineH)
		}
		y += disasmRows*lineH + 4
		for i, s := range view.Memory(a.m.Bus(), a.memAddr, a.cfg.MemRows) {
			ebitenutil.DebugPrintAt(screen, s, 4, y+i*lineH)
		}
	}

	status := "Space: step  R: run/pause  T: trace  PgUp/PgDn: memory  Esc: menu"
	switch {
	case a.fault != "":
		status = "FAULT: " + a.fault
	case a.toastMsg != "" && time.Now().Before(a.toastUntil):
		status = a.toastMsg
	}
	ebitenutil.DebugPrintAt(screen, view.Truncate(status, screenW/charW-2), 4, screenH-lineH-2)
}

func (a *App) Layout(outW, outH int) (int, int) { return screenW, screenH }

func (a *App) toast(msg string) {
	a.toastMsg = msg
	a.toastUntil = time.Now().Add(2 * time.Second)
}
