package interfaces

import domaintypes "coursereg/internal/domain/types"

// CourseStore holds the course catalog in insertion order.
type CourseStore interface {
	AddCourse(c *domaintypes.Course) error
	FindCourseByCode(code domaintypes.CourseCode) (*domaintypes.Course, error)
	Courses() []*domaintypes.Course
}

// StudentStore holds the student roster in insertion order.
type StudentStore interface {
	AddStudent(s *domaintypes.Student) error
	FindStudentByID(id domaintypes.StudentID) (*domaintypes.Student, error)
	Students() []*domaintypes.Student
}
