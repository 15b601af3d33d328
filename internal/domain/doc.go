// Package domain defines the course registration model and the contracts
// between its layers.
//
// Plain types (Course, Student, catalog records) live in the types
// subpackage and interfaces in the interfaces subpackage; this package
// re-exports both so callers import a single path.
package domain
