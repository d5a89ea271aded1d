package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"example.com/recommendation/internal/domain"
)

// FileSource loads the catalog from a local file, YAML or JSON by
// extension. The file holds either a top-level list or {"items": [...]}.
type FileSource struct {
	path string
}

// NewFileSource constructs a FileSource.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type catalogDocument struct {
	Items []domain.Exercise `json:"items" yaml:"items"`
}

// Load reads and parses the catalog file. Failures surface as *LoadError.
func (s *FileSource) Load(ctx context.Context) ([]domain.Exercise, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &LoadError{Source: s.path, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(s.path))
	if ext == ".yaml" || ext == ".yml" {
		return s.parseYAML(data)
	}
	return s.parseJSON(data)
}

func (s *FileSource) parseYAML(data []byte) ([]domain.Exercise, error) {
	var items []domain.Exercise
	if err := yaml.Unmarshal(data, &items); err == nil {
		return items, nil
	}
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Source: s.path, Err: err}
	}
	return doc.Items, nil
}

func (s *FileSource) parseJSON(data []byte) ([]domain.Exercise, error) {
	var items []domain.Exercise
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Source: s.path, Err: err}
	}
	return doc.Items, nil
}
