package domain

import "errors"

// Lookup errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrCourseNotFound  = errors.New("course not found")
)

// Catalog errors
var (
	ErrDuplicateCourse  = errors.New("course code already exists")
	ErrDuplicateStudent = errors.New("student ID already exists")
	ErrInvalidCourse    = errors.New("invalid course")
	ErrInvalidStudent   = errors.New("invalid student")
)
