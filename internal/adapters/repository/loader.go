package repository

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/practicedash/internal/domain/model"
)

// practicesDocument is the on-disk shape:
//
//	practices:
//	  - id: "1"
//	    name: Downtown Dental Care
//	    ...
type practicesDocument struct {
	Practices []model.Practice `yaml:"practices"`
}

// LoadFile reads practice records from a YAML file.
func LoadFile(path string) ([]model.Practice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	practices, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return practices, nil
}

// Decode parses a YAML practices document. Unknown keys are rejected so typos
// in field names do not silently render as zeros.
func Decode(r io.Reader) ([]model.Practice, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc practicesDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Practice{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if doc.Practices == nil {
		return []model.Practice{}, nil
	}
	return doc.Practices, nil
}
