package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRemove   = "✕"
	IconClose    = "×"

	IconSuccess = "✔"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconDanger  = "⛔"
)

// Texts
const (
	AppTitle         = "List Manager"
	EntryPlaceholder = "Enter item"
	EntryLabel       = "New item"
	AddButtonText    = "Add Item"
	ClearButtonText  = "Clear All"
	SettingsText     = "Settings"
	FileMenuText     = "File"
	SettingsSavedMsg = "Settings saved."
	BadDurationMsg   = "Display time must be a whole number of milliseconds."
)

// Layout sizing
const (
	RowMinWidth  float32 = 240
	RowMinHeight float32 = 36

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 220
)

// Toast notification behavior
const (
	MaxVisibleToasts = 5
	DefaultToastTTL  = 1500 * time.Millisecond
)
