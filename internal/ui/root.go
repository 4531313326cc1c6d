package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/list-manager/internal/config"
	"github.com/ytget/list-manager/internal/model"
	"github.com/ytget/list-manager/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	mobile   *MobileUI

	entry       *widget.Entry
	addBtn      *widget.Button
	clearBtn    *widget.Button
	settingsBtn *widget.Button

	listView *ListView
	toasts   *ToastPanel
	store    *store.ListStore
}

// entryFocus lets the store empty and refocus the item entry
type entryFocus struct {
	entry  *widget.Entry
	canvas fyne.Canvas
}

func (f entryFocus) Clear() {
	f.entry.SetText("")
}

func (f entryFocus) Focus() {
	if f.canvas != nil {
		f.canvas.Focus(f.entry)
	}
}

// NewRootUI creates the store, builds the window content and wires input
// handlers. It fails when the list surface cannot be rendered.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings) (*RootUI, error) {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
		mobile:   NewMobileUI(),
	}

	ui.listView = NewListView(ui.mobile)
	ui.toasts = NewToastPanel(app, settings)

	s, err := store.New(ui.listView, ui.toasts)
	if err != nil {
		return nil, fmt.Errorf("init list: %w", err)
	}
	ui.store = s

	ui.setupUI()

	log.Printf("RootUI initialized")
	return ui, nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.entry = widget.NewEntry()
	ui.entry.SetPlaceHolder(EntryPlaceholder)
	ui.entry.OnChanged = ui.limitEntry
	// Enter in the entry adds like the button does
	ui.entry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButton(AddButtonText, ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	ui.clearBtn = widget.NewButton(ClearButtonText, ui.onClearClick)
	ui.clearBtn.Importance = widget.DangerImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	inputRow := container.NewBorder(nil, nil,
		container.NewHBox(ui.settingsBtn, widget.NewLabel(EntryLabel)),
		container.NewHBox(ui.addBtn, ui.clearBtn), ui.entry)

	top := container.NewVBox(inputRow, ui.toasts.Container())

	content := container.NewBorder(
		top, // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewVScroll(ui.listView.Container()), // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.entry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(SettingsText, ui.onShowSettings)
	clearItem := fyne.NewMenuItem(ClearButtonText, ui.onClearClick)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(FileMenuText, settingsItem, clearItem),
	))
}

// limitEntry keeps the entry within the item length limit
func (ui *RootUI) limitEntry(text string) {
	if model.ItemLength(text) > model.MaxItemLength {
		ui.entry.SetText(model.TruncateItem(text))
	}
}

// onAddClick handles the add button click
func (ui *RootUI) onAddClick() {
	ui.store.AddItem(ui.entry.Text, entryFocus{entry: ui.entry, canvas: ui.window.Canvas()})
}

// onClearClick handles the clear button click
func (ui *RootUI) onClearClick() {
	ui.store.Clear()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settings == nil {
		log.Printf("RootUI: settings are not available")
		return
	}
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.toasts.Notify(SettingsSavedMsg, model.SeverityInfo)
	})
}

// Seed adds start-up items through the store
func (ui *RootUI) Seed(items []string) {
	ui.store.Seed(items)
}

// Store returns the list store behind the window
func (ui *RootUI) Store() *store.ListStore {
	return ui.store
}

// ListView returns the renderer of the list rows
func (ui *RootUI) ListView() *ListView {
	return ui.listView
}

// Toasts returns the notification panel
func (ui *RootUI) Toasts() *ToastPanel {
	return ui.toasts
}
