package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific sizing
type MobileUI struct {
	mobile bool
}

// NewMobileUI inspects the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m != nil && m.mobile
}

// TouchTarget wraps obj so it is at least a finger wide on mobile devices.
// On desktop obj is returned unchanged.
func (m *MobileUI) TouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return obj
	}
	size := obj.MinSize()
	if size.Width < MinTouchTargetSize {
		size.Width = MinTouchTargetSize
	}
	if size.Height < MinTouchTargetSize {
		size.Height = MinTouchTargetSize
	}
	return container.NewGridWrap(size, obj)
}
