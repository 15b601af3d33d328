package store

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"coursereg/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// DefaultCatalog returns the built-in seed: three courses and two students.
func DefaultCatalog() (domain.Catalog, error) {
	return ParseCatalog(defaultSeed)
}

// LoadCatalog reads a YAML catalog from path.
func LoadCatalog(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := ParseCatalog(b)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes a YAML catalog. Unknown keys are rejected and an empty
// document yields an empty catalog.
func ParseCatalog(b []byte) (domain.Catalog, error) {
	var cat domain.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil && !errors.Is(err, io.EOF) {
		return domain.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	return cat, nil
}

// Populate builds every record of cat into the two stores, stopping at the
// first invalid or duplicate entry.
func Populate(cat domain.Catalog, courses domain.CourseStore, students domain.StudentStore) error {
	for _, r := range cat.Courses {
		c := domain.NewCourse(r.Code, r.Title, r.Description, r.Capacity, r.Schedule)
		if err := courses.AddCourse(c); err != nil {
			return err
		}
	}
	for _, r := range cat.Students {
		if err := students.AddStudent(domain.NewStudent(r.ID, r.Name)); err != nil {
			return err
		}
	}
	return nil
}
