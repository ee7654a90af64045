package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// NoteContentKey is the only key of the persisted note document.
const NoteContentKey = "note_content"

var ErrInvalidNoteDocument = errors.New("invalid note document")

// NoteState is the whole application state: the text of the single note.
// The zero value is the empty note used whenever loading fails.
type NoteState struct {
	Content string
}

// DefaultNoteState returns the state a session starts with when nothing
// could be loaded.
func DefaultNoteState() NoteState {
	return NoteState{}
}

func (n NoteState) MarshalJSON() ([]byte, error) {
	doc := map[string]string{NoteContentKey: n.Content}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON accepts an object holding exactly one string under
// NoteContentKey. On failure the receiver is left unchanged.
func (n *NoteState) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNoteDocument, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: expected an object", ErrInvalidNoteDocument)
	}

	raw, ok := doc[NoteContentKey]
	if !ok {
		return fmt.Errorf("%w: missing field %q", ErrInvalidNoteDocument, NoteContentKey)
	}
	for key := range doc {
		if key != NoteContentKey {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidNoteDocument, key)
		}
	}

	var content string
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrInvalidNoteDocument, NoteContentKey, err)
	}

	n.Content = content
	return nil
}

// EncodeNote renders the state as the pretty-printed document written to disk.
func EncodeNote(n NoteState) ([]byte, error) {
	compact, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeNote parses a persisted document. Any error means the caller should
// fall back to DefaultNoteState.
func DecodeNote(data []byte) (NoteState, error) {
	var n NoteState
	if err := n.UnmarshalJSON(data); err != nil {
		return DefaultNoteState(), err
	}
	return n, nil
}
