package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursereg/internal/domain"
	"coursereg/internal/store"
)

func TestCourses_FindAndOrder(t *testing.T) {
	var courses domain.CourseStore = store.NewCourseMemStore()

	ma := domain.NewCourse("MA101", "Calculus I", "", 25, "")
	cs := domain.NewCourse("CS101", "Intro", "", 30, "")
	require.NoError(t, courses.AddCourse(ma))
	require.NoError(t, courses.AddCourse(cs))

	got, err := courses.FindCourseByCode("CS101")
	require.NoError(t, err)
	assert.Same(t, cs, got)

	assert.Equal(t, []*domain.Course{ma, cs}, courses.Courses())
}

func TestCourses_LookupIsExact(t *testing.T) {
	courses := store.NewCourseMemStore()
	require.NoError(t, courses.AddCourse(domain.NewCourse("CS101", "Intro", "", 30, "")))

	for _, code := range []domain.CourseCode{"cs101", " CS101", "CS101 ", "", "CS10"} {
		_, err := courses.FindCourseByCode(code)
		assert.ErrorIs(t, err, domain.ErrCourseNotFound, "code %q", code)
	}
}

func TestCourses_AddRejectsBadRecords(t *testing.T) {
	courses := store.NewCourseMemStore()
	require.NoError(t, courses.AddCourse(domain.NewCourse("CS101", "Intro", "", 30, "")))

	err := courses.AddCourse(domain.NewCourse("CS101", "Other", "", 10, ""))
	assert.ErrorIs(t, err, domain.ErrDuplicateCourse)

	err = courses.AddCourse(domain.NewCourse("", "Nameless", "", 10, ""))
	assert.ErrorIs(t, err, domain.ErrInvalidCourse)

	err = courses.AddCourse(domain.NewCourse("ZERO", "No seats", "", 0, ""))
	assert.ErrorIs(t, err, domain.ErrInvalidCourse)

	assert.Len(t, courses.Courses(), 1)
}

func TestStudents_FindAndOrder(t *testing.T) {
	var students domain.StudentStore = store.NewStudentMemStore()

	bob := domain.NewStudent("S1002", "Bob")
	alice := domain.NewStudent("S1001", "Alice")
	require.NoError(t, students.AddStudent(bob))
	require.NoError(t, students.AddStudent(alice))

	got, err := students.FindStudentByID("S1001")
	require.NoError(t, err)
	assert.Same(t, alice, got)

	_, err = students.FindStudentByID("S9999")
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)

	assert.Equal(t, []*domain.Student{bob, alice}, students.Students())
}

func TestStudents_AddRejectsBadRecords(t *testing.T) {
	students := store.NewStudentMemStore()
	require.NoError(t, students.AddStudent(domain.NewStudent("S1", "Ann")))

	assert.ErrorIs(t, students.AddStudent(domain.NewStudent("S1", "Ann again")), domain.ErrDuplicateStudent)
	assert.ErrorIs(t, students.AddStudent(domain.NewStudent("", "Nobody")), domain.ErrInvalidStudent)
	assert.Len(t, students.Students(), 1)
}

func TestCourses_ListingIsACopy(t *testing.T) {
	courses := store.NewCourseMemStore()
	cs := domain.NewCourse("CS101", "Intro", "", 30, "")
	require.NoError(t, courses.AddCourse(cs))

	list := courses.Courses()
	list[0] = nil
	assert.Equal(t, []*domain.Course{cs}, courses.Courses())
}
