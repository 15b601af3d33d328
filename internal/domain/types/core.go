package types

// StudentID uniquely identifies a student on the roster.
type StudentID string

// String returns the string form of the student identifier.
func (id StudentID) String() string { return string(id) }

// CourseCode uniquely identifies a course in the catalog.
type CourseCode string

// String returns the string form of the course code.
func (c CourseCode) String() string { return string(c) }
