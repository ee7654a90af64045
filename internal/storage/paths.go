package storage

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

var ErrNoDataDir = errors.New("could not determine data directory for the OS")

// DataDirProvider supplies the per-user base data directory. The store
// appends its own application folder.
type DataDirProvider interface {
	DataDir() (string, error)
}

type DataDirFunc func() (string, error)

func (f DataDirFunc) DataDir() (string, error) {
	return f()
}

// StaticDataDir always resolves to dir.
func StaticDataDir(dir string) DataDirProvider {
	return DataDirFunc(func() (string, error) {
		if dir == "" {
			return "", ErrNoDataDir
		}
		return dir, nil
	})
}

// OSDataDir resolves the platform's per-user data directory:
//   - Linux/BSD: $XDG_DATA_HOME, else ~/.local/share
//   - macOS: ~/Library/Application Support
//   - Windows: %APPDATA%
type OSDataDir struct{}

func (OSDataDir) DataDir() (string, error) {
	var dir string
	if runtime.GOOS == "windows" {
		d, err := os.UserConfigDir()
		if err != nil {
			return "", errors.Join(ErrNoDataDir, err)
		}
		dir = d
	} else {
		dir = xdg.DataHome
	}

	if dir == "" || !filepath.IsAbs(dir) {
		return "", ErrNoDataDir
	}
	return dir, nil
}
