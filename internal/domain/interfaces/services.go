package interfaces

import domaintypes "coursereg/internal/domain/types"

// RegistrationService resolves students and courses and moves seats between
// them.
type RegistrationService interface {
	Courses() []*domaintypes.Course
	Students() []*domaintypes.Student
	FindStudent(id domaintypes.StudentID) (*domaintypes.Student, error)
	FindCourse(code domaintypes.CourseCode) (*domaintypes.Course, error)

	// Register and Drop report the outcome as a single boolean.
	Register(s *domaintypes.Student, c *domaintypes.Course) bool
	Drop(s *domaintypes.Student, c *domaintypes.Course) bool
}
