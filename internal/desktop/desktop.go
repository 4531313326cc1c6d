// Package desktop starts the Fyne application window.
package desktop

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/list-manager/internal/config"
	"github.com/ytget/list-manager/internal/ui"
)

// AppID identifies the application to Fyne, which keys preferences by it
const AppID = "com.ytget.list-manager"

// Run opens the list window, adds seed and blocks until the window closes
func Run(cfg config.Config, seed []string, version string) error {
	log.Printf("%s v%s starting...", ui.AppTitle, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", ui.AppTitle, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(cfg.UI.WindowWidth, cfg.UI.WindowHeight))

	settings := config.NewSettings(myApp)
	settings.SeedFrom(cfg)

	root, err := ui.NewRootUI(myWindow, myApp, settings)
	if err != nil {
		return fmt.Errorf("build window: %w", err)
	}
	root.Seed(seed)

	myWindow.ShowAndRun()
	return nil
}
