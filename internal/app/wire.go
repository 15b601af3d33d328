package app

import (
	"fmt"
	"io"

	"coursereg/internal/domain"
	"coursereg/internal/logging"
	"coursereg/internal/services/registration"
	"coursereg/internal/store"
)

// New constructs the dependency graph from cfg. Logs go to logOut.
func New(cfg Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Config{
		Level:  logging.Level(cfg.LogLevel),
		Format: logging.Format(cfg.LogFormat),
		Output: logOut,
	})
	if err != nil {
		return nil, err
	}

	// Seed catalog
	var cat domain.Catalog
	if cfg.Catalog == "" {
		cat, err = store.DefaultCatalog()
	} else {
		cat, err = store.LoadCatalog(cfg.Catalog)
	}
	if err != nil {
		return nil, err
	}

	// In-memory registries
	courses := store.NewCourseMemStore()
	students := store.NewStudentMemStore()
	if err := store.Populate(cat, courses, students); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	log.Debug().
		Str("catalog", cfg.Catalog).
		Int("courses", len(cat.Courses)).
		Int("students", len(cat.Students)).
		Msg("catalog loaded")

	return &App{
		Courses:      courses,
		Students:     students,
		Registration: registration.New(courses, students, log),
		Log:          log,
	}, nil
}
