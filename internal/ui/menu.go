package ui

import (
	"path/filepath"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/ui/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mainMenu = []string{"Reset (post-boot)", "Reload ROM", "Switch ROM", "Close", "Quit"}

func (a *App) toggleMenu() {
	if a.showMenu && a.menuMode == "rom" {
		a.openMain()
		return
	}
	a.showMenu = !a.showMenu
	if a.showMenu {
		a.running = false
		a.openMain()
	}
}

func (a *App) openMain() {
	a.menuMode = "main"
	a.menu = view.Menu{Items: mainMenu}
}

func (a *App) updateMenu() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.menu.Up()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		a.menu.Down()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.toggleMenu()
		return
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if a.menuMode == "rom" {
		a.loadROM(a.menu.Selected())
		return
	}
	switch a.menu.Sel {
	case 0:
		a.m.ResetPostBoot()
		a.fault = ""
		a.showMenu = false
	case 1:
		a.loadROM(a.m.ROMPath())
	case 2:
		a.menuMode = "rom"
		a.menu = view.Menu{Items: view.FindROMs(a.cfg.ROMsDir), Rows: (screenH - 40) / lineH}
	case 3:
		a.showMenu = false
	case 4:
		a.quit = true
	}
}

func (a *App) loadROM(path string) {
	a.showMenu = false
	if path == "" {
		a.toast("no ROM selected")
		return
	}
	if err := a.m.LoadROMFromFile(path); err != nil {
		a.toast("ROM load failed: " + err.Error())
		return
	}
	a.fault = ""
	a.running = false
	a.toast("loaded " + filepath.Base(path))
	title := a.cfg.Title
	if h := a.m.Header(); h != nil && h.Title != "" {
		title += " - [" + h.Title + "]"
	}
	ebiten.SetWindowTitle(title)
}

func (a *App) drawMenu(screen *ebiten.Image) {
	header := "Menu:"
	if a.menuMode == "rom" {
		header = view.Truncate("Select ROM in "+a.cfg.ROMsDir+" (Enter: load, Esc: back)", screenW/charW-2)
		if len(a.menu.Items) == 0 {
			ebitenutil.DebugPrintAt(screen, "No ROMs found", 10, 40)
		}
	}
	ebitenutil.DebugPrintAt(screen, header, 10, 10)
	for i, s := range a.menu.Lines() {
		if a.menuMode == "rom" {
			s = s[:2] + view.Truncate(filepath.Base(s[2:]), screenW/charW-6)
		}
		ebitenutil.DebugPrintAt(screen, s, 10, 28+i*lineH)
	}
}
