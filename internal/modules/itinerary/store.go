package itinerary

import (
	"fmt"
	"os"

	"tripsmith/internal/types"
)

// TemplateStore supplies the itinerary template text.
type TemplateStore interface {
	Load() (string, error)
}

// FileTemplateStore reads the template from disk on every Load so edits are
// picked up without a restart.
type FileTemplateStore struct {
	path string
}

// NewFileTemplateStore returns a store for path.
func NewFileTemplateStore(path string) *FileTemplateStore {
	return &FileTemplateStore{path: path}
}

// Load returns the template text. A missing or unreadable file is a ResourceError.
func (s *FileTemplateStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", &types.ResourceError{Resource: s.path, Err: err}
	}
	return string(data), nil
}

// StaticTemplateStore serves fixed template text.
type StaticTemplateStore string

func (s StaticTemplateStore) Load() (string, error) {
	if s == "" {
		return "", &types.ResourceError{Resource: "static template", Err: fmt.Errorf("empty template")}
	}
	return string(s), nil
}
