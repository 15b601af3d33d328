// Package store provides the in-memory registries for courses and students.
//
// Both stores keep records in insertion order for listing and index them by
// identifier for lookup. They are seeded once at startup from a Catalog,
// either the embedded default (seed.yaml) or a YAML file named on the
// command line, and live for the rest of the process. Nothing is written
// back.
//
// The package includes:
//   - CourseMemStore (domain.CourseStore)
//   - StudentMemStore (domain.StudentStore)
//   - Catalog loading and validation (DefaultCatalog, LoadCatalog, Populate)
package store
