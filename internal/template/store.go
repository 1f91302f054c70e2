// Package template loads named JSON documents from disk and fills
// {{key}} placeholders by literal substitution. Documents are plain text
// until a caller asks for structural extraction, so fills may splice in
// user-supplied text that is not valid JSON on its own as long as the
// final result parses.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned when no template file matches the name.
	ErrNotFound = errors.New("template not found")
	// ErrInvalidFormat is returned when a document is not well-formed JSON
	// at the point structure is required.
	ErrInvalidFormat = errors.New("template is not valid JSON")
)

// Document is the text of a loaded template.
type Document string

// Store loads templates from <dir>/blocks/<name>.block.json and
// <dir>/modals/<name>.modal.json.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Block loads a message block template by name.
func (s *Store) Block(name string) (Document, error) {
	return s.load(filepath.Join(s.dir, "blocks", name+".block.json"))
}

// Modal loads a modal view template by name.
func (s *Store) Modal(name string) (Document, error) {
	return s.load(filepath.Join(s.dir, "modals", name+".modal.json"))
}

func (s *Store) load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}
	return Document(data), nil
}

// Fill replaces every occurrence of {{key}} with the mapped value for each
// key in args. Placeholders without a mapping are left verbatim.
func (d Document) Fill(args map[string]string) Document {
	out := string(d)
	for key, val := range args {
		out = strings.ReplaceAll(out, "{{"+key+"}}", val)
	}
	return Document(out)
}

// Blocks parses the document and returns the re-serialized value of its
// "blocks" field. Call only after all fills are complete.
func (d Document) Blocks() (Document, error) {
	var doc struct {
		Blocks json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(d), &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return Document(doc.Blocks), nil
}

func (d Document) String() string {
	return string(d)
}
