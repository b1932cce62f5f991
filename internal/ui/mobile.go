package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI adapts the command panel to the device
type MobileUI struct {
	mobile bool
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.mobile
}

// CommandPanel arranges command buttons: a two-column grid above the content
// on mobile, a vertical sidebar on desktop.
func (m *MobileUI) CommandPanel(objects ...fyne.CanvasObject) *fyne.Container {
	if m.mobile {
		return container.NewAdaptiveGrid(2, objects...)
	}
	return container.NewVBox(objects...)
}
