package main

import (
	"os"

	stickyapp "sticky-note/internal/app"
	"sticky-note/internal/logger"
	"sticky-note/internal/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
)

func main() {
	appLogger := logger.NewConsoleLogger(stickyapp.LogLevelFromEnv(os.Getenv))

	app.SetMetadata(fyne.AppMetadata{
		ID:      stickyapp.AppID,
		Name:    stickyapp.AppName,
		Version: stickyapp.AppVersion,
	})
	fyneApp := app.NewWithID(stickyapp.AppID)

	application := stickyapp.NewApplication(fyneApp, afero.NewOsFs(), storage.OSDataDir{}, appLogger)
	application.Run()
}
