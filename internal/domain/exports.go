package domain

import (
	interfaces "coursereg/internal/domain/interfaces"
	types "coursereg/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	StudentID     = types.StudentID
	CourseCode    = types.CourseCode
	Course        = types.Course
	Student       = types.Student
	CourseRecord  = types.CourseRecord
	StudentRecord = types.StudentRecord
	Catalog       = types.Catalog
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CourseStore         = interfaces.CourseStore
	StudentStore        = interfaces.StudentStore
	RegistrationService = interfaces.RegistrationService
)

// Constructors re-exported so callers need only the domain package.
var (
	NewCourse  = types.NewCourse
	NewStudent = types.NewStudent
)
