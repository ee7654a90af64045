package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sticky-note/internal/logger"
	"sticky-note/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDiskStore returns a store rooted in a fresh temp dir and the path the
// data file will live at.
func newDiskStore(t *testing.T) (*Store, string) {
	t.Helper()
	base := t.TempDir()
	store := NewStore(afero.NewOsFs(), StaticDataDir(base), logger.Nop())
	return store, filepath.Join(base, AppDirName, DataFileName)
}

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Empty", ""},
		{"Plain", "remember the milk"},
		{"Quotes", `"quoted" and 'single'`},
		{"Newlines", "first\nsecond\r\nthird\n"},
		{"Unicode", "Grüße 👋 你好"},
		{"JSON Lookalike", `{"note_content": "nested"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newDiskStore(t)

			require.NoError(t, store.Save(models.NoteState{Content: tt.content}))
			got := store.Load()

			assert.Equal(t, tt.content, got.Content)
		})
	}
}

func TestStore_ResolvePath(t *testing.T) {
	store, want := newDiskStore(t)

	path, ok := store.ResolvePath()
	require.True(t, ok)
	assert.Equal(t, want, path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_LoadMissingFile(t *testing.T) {
	store, path := newDiskStore(t)

	got := store.Load()

	assert.Equal(t, models.DefaultNoteState(), got)
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "load must not create the data file")
}

func TestStore_LoadCorruptFileLeavesItUntouched(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"Invalid JSON", []byte("{not json")},
		{"Unknown Key", []byte(`{"note_content":"hi","pinned":true}`)},
		{"Missing Key", []byte(`{}`)},
		{"Wrong Type", []byte(`{"note_content":["a"]}`)},
		{"Invalid UTF-8", []byte("{\"note_content\":\"\xff\xfe\"}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newDiskStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, tt.content, 0o644))

			got := store.Load()

			assert.Equal(t, models.DefaultNoteState(), got)
			onDisk, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, onDisk)
		})
	}
}

func TestStore_LoadUnreadableFile(t *testing.T) {
	store, path := newDiskStore(t)
	// A directory where the file should be cannot be read as text.
	require.NoError(t, os.MkdirAll(path, 0o755))

	got := store.Load()

	assert.Equal(t, models.DefaultNoteState(), got)
}

func TestStore_SaveCreatesDirectoryTree(t *testing.T) {
	base := filepath.Join(t.TempDir(), "does", "not", "exist")
	store := NewStore(afero.NewOsFs(), StaticDataDir(base), logger.Nop())

	require.NoError(t, store.Save(models.NoteState{Content: "fresh"}))

	_, err := os.Stat(filepath.Join(base, AppDirName, DataFileName))
	require.NoError(t, err)
	assert.Equal(t, "fresh", store.Load().Content)
}

func TestStore_SaveIsIdempotent(t *testing.T) {
	store, path := newDiskStore(t)
	state := models.NoteState{Content: "same text\nevery time"}

	require.NoError(t, store.Save(state))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(state))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, path := newDiskStore(t)

	require.NoError(t, store.Save(models.NoteState{Content: "a much longer first version"}))
	require.NoError(t, store.Save(models.NoteState{Content: "short"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"note_content\": \"short\"\n}", string(data))
}

func TestStore_SaveWriteFailure(t *testing.T) {
	store, path := newDiskStore(t)
	require.NoError(t, os.MkdirAll(path, 0o755))

	err := store.Save(models.NoteState{Content: "lost"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoDataPath)
}

func TestStore_NoDataDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	dirs := DataDirFunc(func() (string, error) { return "", ErrNoDataDir })
	store := NewStore(fs, dirs, logger.Nop())

	_, ok := store.ResolvePath()
	assert.False(t, ok)

	assert.Equal(t, models.DefaultNoteState(), store.Load())
	assert.ErrorIs(t, store.Save(models.NoteState{Content: "x"}), ErrNoDataPath)
}

func TestStore_DirectoryCreationFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/data/"+AppDirName+"/"+DataFileName,
		[]byte(`{"note_content":"unreachable"}`), 0o644))
	store := NewStore(afero.NewReadOnlyFs(base), StaticDataDir("/data"), logger.Nop())

	_, ok := store.ResolvePath()
	assert.False(t, ok)
	assert.Equal(t, models.DefaultNoteState(), store.Load())
	assert.ErrorIs(t, store.Save(models.NoteState{Content: "x"}), ErrNoDataPath)
}

func TestStore_InMemoryFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, StaticDataDir("/home/u/.local/share"), logger.Nop())

	require.NoError(t, store.Save(models.NoteState{Content: "in memory"}))

	exists, err := afero.Exists(fs, "/home/u/.local/share/"+AppDirName+"/"+DataFileName)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "in memory", store.Load().Content)
}

func TestStore_LogsOutcomes(t *testing.T) {
	var buf bytes.Buffer
	base := t.TempDir()
	store := NewStore(afero.NewOsFs(), StaticDataDir(base), logger.NewZerolog(&buf, logger.DebugLevel))

	store.Load()
	require.NoError(t, store.Save(models.NoteState{Content: "x"}))

	var messages []string
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]interface{}
		require.NoError(t, dec.Decode(&entry))
		assert.Equal(t, component, entry["component"])
		messages = append(messages, entry["message"].(string))
	}

	assert.Equal(t, []string{
		"no saved file found",
		"starting with default (empty) note",
		"saved state",
	}, messages)
}
