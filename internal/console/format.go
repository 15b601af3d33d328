package console

import (
	"fmt"
	"io"

	"coursereg/internal/domain"
)

// WriteCourse prints one course block followed by a blank line.
func WriteCourse(w io.Writer, c *domain.Course) {
	fmt.Fprintf(w, "%s: %s\n", c.Code(), c.Title())
	fmt.Fprintf(w, "Description: %s\n", c.Description())
	fmt.Fprintf(w, "Schedule: %s\n", c.Schedule())
	fmt.Fprintf(w, "Enrolled: %d/%d\n\n", c.Enrolled(), c.Capacity())
}

// WriteCatalog prints every course under the "Available Courses" header.
func WriteCatalog(w io.Writer, courses []*domain.Course) {
	fmt.Fprintln(w, "\nAvailable Courses:")
	for _, c := range courses {
		WriteCourse(w, c)
	}
}

// WriteRegistrations prints the courses st is registered in.
func WriteRegistrations(w io.Writer, st *domain.Student) {
	fmt.Fprintf(w, "\nRegistered Courses for %s:\n", st.Name())
	for _, c := range st.RegisteredCourses() {
		WriteCourse(w, c)
	}
}

// WriteRoster prints one "<id>: <name>" line per student.
func WriteRoster(w io.Writer, students []*domain.Student) {
	for _, st := range students {
		fmt.Fprintf(w, "%s: %s\n", st.ID(), st.Name())
	}
}
