package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"sticky-note/internal/logger"
	"sticky-note/internal/models"

	"github.com/spf13/afero"
)

const (
	AppDirName   = "sticky-note-app"
	DataFileName = "sticky_note_data.json"

	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644

	component = "Store"
)

var ErrNoDataPath = errors.New("no data file path available")

// Store reads and writes the note document under the provider's data
// directory. Every failure is logged here; callers only see the fallback.
type Store struct {
	fs     afero.Fs
	dirs   DataDirProvider
	logger logger.Logger
}

func NewStore(fs afero.Fs, dirs DataDirProvider, log logger.Logger) *Store {
	return &Store{
		fs:     fs,
		dirs:   dirs,
		logger: log,
	}
}

// ResolvePath returns <data dir>/sticky-note-app/sticky_note_data.json,
// creating the application folder if needed. ok is false when no usable
// location exists and the session has to stay in memory.
func (s *Store) ResolvePath() (path string, ok bool) {
	base, err := s.dirs.DataDir()
	if err != nil {
		s.logger.Error(component, "could not determine data directory", err, nil)
		return "", false
	}

	dir := filepath.Join(base, AppDirName)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		s.logger.Error(component, "failed to create data directory", err, map[string]interface{}{
			"path": dir,
		})
		return "", false
	}

	return filepath.Join(dir, DataFileName), true
}

// Load returns the persisted state, or the empty state if anything goes wrong.
func (s *Store) Load() models.NoteState {
	if path, ok := s.ResolvePath(); ok {
		if state, found := s.read(path); found {
			s.logger.Info(component, "loaded state", map[string]interface{}{
				"path":  path,
				"bytes": len(state.Content),
			})
			return state
		}
	}

	s.logger.Info(component, "starting with default (empty) note", nil)
	return models.DefaultNoteState()
}

func (s *Store) read(path string) (models.NoteState, bool) {
	fields := map[string]interface{}{"path": path}

	if _, err := s.fs.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info(component, "no saved file found", fields)
		} else {
			s.logger.Error(component, "failed to stat data file", err, fields)
		}
		return models.NoteState{}, false
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.logger.Error(component, "failed to read data file", err, fields)
		return models.NoteState{}, false
	}
	if !utf8.Valid(data) {
		s.logger.Error(component, "failed to read data file", errors.New("content is not valid UTF-8"), fields)
		return models.NoteState{}, false
	}

	state, err := models.DecodeNote(data)
	if err != nil {
		s.logger.Error(component, "failed to parse data file", err, fields)
		return models.NoteState{}, false
	}
	return state, true
}

// Save overwrites the data file with state. The returned error is for
// callers that want to react to it; it has already been logged.
func (s *Store) Save(state models.NoteState) error {
	path, ok := s.ResolvePath()
	if !ok {
		s.logger.Warning(component, "save skipped: no data file path", nil)
		return ErrNoDataPath
	}

	data, err := models.EncodeNote(state)
	if err != nil {
		s.logger.Error(component, "failed to serialize note for saving", err, nil)
		return fmt.Errorf("encode note: %w", err)
	}

	if err := afero.WriteFile(s.fs, path, data, filePerm); err != nil {
		s.logger.Error(component, "failed to write data file", err, map[string]interface{}{
			"path": path,
		})
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.logger.Info(component, "saved state", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	return nil
}
