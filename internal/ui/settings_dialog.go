package ui

import (
	"log"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/list-manager/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	toastEntry  *widget.Entry
	systemCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	NewSettingsDialog(settings, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.toastEntry = widget.NewEntry()
	sd.toastEntry.SetPlaceHolder(strconv.Itoa(int(config.MinToastDuration.Milliseconds())) +
		"-" + strconv.Itoa(int(config.MaxToastDuration.Milliseconds())))

	sd.systemCheck = widget.NewCheck("Mirror notifications to the system", nil)

	form := container.NewVBox(
		widget.NewLabel("Notification display time (ms):"),
		sd.toastEntry,
		widget.NewSeparator(),
		sd.systemCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		SettingsText,
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.toastEntry.SetText(strconv.Itoa(int(sd.settings.GetToastDuration().Milliseconds())))
	sd.systemCheck.SetChecked(sd.settings.GetSystemNotifications())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if text := strings.TrimSpace(sd.toastEntry.Text); text != "" {
		ms, err := strconv.Atoi(text)
		if err != nil {
			log.Printf("SettingsDialog: rejecting toast duration %q: %v", text, err)
			dialog.ShowInformation(SettingsText, BadDurationMsg, sd.window)
			return
		}
		sd.settings.SetToastDuration(time.Duration(ms) * time.Millisecond)
	}

	sd.settings.SetSystemNotifications(sd.systemCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
