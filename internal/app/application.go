package app

import (
	"runtime"
	"sync/atomic"

	"sticky-note/internal/controllers"
	"sticky-note/internal/logger"
	"sticky-note/internal/shutdown"
	"sticky-note/internal/storage"
	"sticky-note/internal/views"

	"fyne.io/fyne/v2"
	"github.com/spf13/afero"
)

const (
	AppName    = "Sticky Note"
	AppID      = "com.stickynote.app"
	AppVersion = "1.0.0"

	WindowWidth  = 300
	WindowHeight = 200
)

// Application wires the store, controller and view around one fyne app.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.NoteController
	view       *views.NoteView
	store      *storage.Store
	shutdown   *shutdown.Manager

	stopped atomic.Bool
}

// NewApplication builds every component on top of fyneApp. The note is
// loaded from dirs before the window is shown.
func NewApplication(fyneApp fyne.App, fs afero.Fs, dirs storage.DataDirProvider, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(false)
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
	})

	store := storage.NewStore(fs, dirs, log)
	controller := controllers.NewNoteController(store, log)
	view := views.NewNoteView(window, log)
	controller.SetMainView(view)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
		store:      store,
		shutdown:   shutdown.NewManager(log),
	}

	a.setupWindowEvents()
	a.setupShutdown()

	return a
}

// Run shows the window and blocks until it is closed.
func (a *Application) Run() {
	a.logger.Info("Application", "starting application UI", nil)
	a.shutdown.Listen()

	a.view.Show()
	a.view.Focus()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
}

// Controller exposes the note controller.
func (a *Application) Controller() *controllers.NoteController {
	return a.controller
}

// View exposes the note view.
func (a *Application) View() *views.NoteView {
	return a.view
}

// setupWindowEvents configures window lifecycle events
func (a *Application) setupWindowEvents() {
	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.view.KeepOnTop()
	})
	a.fyneApp.Lifecycle().SetOnStopped(func() {
		a.stopped.Store(true)
	})

	a.window.SetOnClosed(func() {
		a.controller.Close()
	})
}

// setupShutdown quits the UI on SIGINT/SIGTERM. The note is not saved.
func (a *Application) setupShutdown() {
	a.shutdown.Register(shutdown.Func(func() {
		if a.stopped.Load() {
			return
		}
		fyne.Do(a.fyneApp.Quit)
	}))
}
