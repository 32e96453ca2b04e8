package menubar

import (
	systray "fyne.io/systray"
)

// Tray is the status-bar surface the menu is built on
type Tray interface {
	// Run blocks on the calling (main) thread until Quit is called
	Run(onReady, onExit func())
	Quit()
	SetTemplateIcon(template, regular []byte)
	SetTooltip(tooltip string)
	AddMenuItem(title, tooltip string) MenuItem
	AddSeparator()
}

// MenuItem is a single entry of the status menu
type MenuItem interface {
	SetTitle(title string)
	Disable()
	Clicked() <-chan struct{}
}

// SystrayTray implements Tray with fyne.io/systray
type SystrayTray struct{}

var _ Tray = SystrayTray{}

func (SystrayTray) Run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

func (SystrayTray) Quit() {
	systray.Quit()
}

func (SystrayTray) SetTemplateIcon(template, regular []byte) {
	systray.SetTemplateIcon(template, regular)
}

func (SystrayTray) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

func (SystrayTray) AddMenuItem(title, tooltip string) MenuItem {
	return systrayItem{item: systray.AddMenuItem(title, tooltip)}
}

func (SystrayTray) AddSeparator() {
	systray.AddSeparator()
}

type systrayItem struct {
	item *systray.MenuItem
}

func (s systrayItem) SetTitle(title string) {
	s.item.SetTitle(title)
}

func (s systrayItem) Disable() {
	s.item.Disable()
}

func (s systrayItem) Clicked() <-chan struct{} {
	return s.item.ClickedCh
}
