package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/examprep/backend/internal/domain/syllabus"
)

var validate = validator.New()

// LoadSyllabusYAML decodes a syllabus seed document:
//
//	papers:
//	  - id: paper-1
//	    name: Paper I
//	    kind: paper
//	    children:
//	      - id: ...
//
// Structural fields are validated; target values are stored as given and
// checked by the analytics when progress is computed.
func LoadSyllabusYAML(r io.Reader) (syllabus.Tree, error) {
	var tree syllabus.Tree
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tree); err != nil {
		return syllabus.Tree{}, fmt.Errorf("decode syllabus: %w", err)
	}
	if err := validate.Struct(tree); err != nil {
		return syllabus.Tree{}, fmt.Errorf("invalid syllabus: %w", err)
	}
	return tree, nil
}

// SeedSyllabusFile replaces the stored syllabus with the YAML file at path.
func SeedSyllabusFile(ctx context.Context, s Store, path string) (syllabus.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return syllabus.Tree{}, err
	}
	defer f.Close()

	tree, err := LoadSyllabusYAML(f)
	if err != nil {
		return syllabus.Tree{}, err
	}
	if err := s.ReplaceSyllabus(ctx, tree); err != nil {
		return syllabus.Tree{}, err
	}
	return tree, nil
}
