package app

import (
	"github.com/rs/zerolog"

	"coursereg/internal/domain"
)

// App bundles the stores and services the commands run against.
type App struct {
	Courses      domain.CourseStore
	Students     domain.StudentStore
	Registration domain.RegistrationService
	Log          zerolog.Logger
}
