package types_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"coursereg/internal/domain/types"
)

func TestCourse_RegisterUntilFull(t *testing.T) {
	c := types.NewCourse("CS101", "Intro", "Basics", 2, "MWF 10-11")

	assert.True(t, c.HasSlot())
	assert.True(t, c.RegisterStudent())
	assert.True(t, c.RegisterStudent())
	assert.Equal(t, 2, c.Enrolled())
	assert.False(t, c.HasSlot())

	assert.False(t, c.RegisterStudent(), "full course must reject")
	assert.Equal(t, 2, c.Enrolled())
}

func TestCourse_DropAtZero_NoChange(t *testing.T) {
	c := types.NewCourse("MA101", "Calculus I", "Intro", 5, "TTh 9-10:30")

	assert.False(t, c.DropStudent())
	assert.Equal(t, 0, c.Enrolled())

	assert.True(t, c.RegisterStudent())
	assert.True(t, c.DropStudent())
	assert.Equal(t, 0, c.Enrolled())
	assert.False(t, c.DropStudent())
}

func TestCourse_Accessors(t *testing.T) {
	c := types.NewCourse("PH101", "Physics I", "Introduction to physics", 20, "MWF 11-12")

	assert.Equal(t, types.CourseCode("PH101"), c.Code())
	assert.Equal(t, "Physics I", c.Title())
	assert.Equal(t, "Introduction to physics", c.Description())
	assert.Equal(t, 20, c.Capacity())
	assert.Equal(t, "MWF 11-12", c.Schedule())
	assert.Equal(t, 0, c.Enrolled())
}

func TestCourse_CounterStaysInBounds(t *testing.T) {
	c := types.NewCourse("X1", "X", "", 3, "")
	ops := []func() bool{
		c.DropStudent, c.RegisterStudent, c.RegisterStudent, c.RegisterStudent,
		c.RegisterStudent, c.DropStudent, c.RegisterStudent, c.RegisterStudent,
		c.DropStudent, c.DropStudent, c.DropStudent, c.DropStudent,
	}
	for i, op := range ops {
		op()
		assert.GreaterOrEqual(t, c.Enrolled(), 0, "op %d", i)
		assert.LessOrEqual(t, c.Enrolled(), c.Capacity(), "op %d", i)
	}
}

func TestCourse_DoesNotExposeStudents(t *testing.T) {
	studentType := reflect.TypeOf((*types.Student)(nil))
	courseType := reflect.TypeOf((*types.Course)(nil))

	for i := 0; i < courseType.NumMethod(); i++ {
		m := courseType.Method(i)
		for j := 0; j < m.Type.NumOut(); j++ {
			out := m.Type.Out(j)
			assert.NotEqual(t, studentType, out, "method %s", m.Name)
			if out.Kind() == reflect.Slice || out.Kind() == reflect.Map {
				assert.NotEqual(t, studentType, out.Elem(), "method %s", m.Name)
			}
		}
	}
	for i := 0; i < courseType.Elem().NumField(); i++ {
		f := courseType.Elem().Field(i)
		assert.NotContains(t, f.Type.String(), "Student", "field %s", f.Name)
	}
}
