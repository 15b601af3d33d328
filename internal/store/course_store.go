package store

import (
	"fmt"

	"coursereg/internal/domain"
)

// CourseMemStore keeps the course catalog in memory, in insertion order.
type CourseMemStore struct {
	order  []*domain.Course
	byCode map[domain.CourseCode]*domain.Course
}

// NewCourseMemStore returns an empty catalog.
func NewCourseMemStore() *CourseMemStore {
	return &CourseMemStore{byCode: map[domain.CourseCode]*domain.Course{}}
}

// AddCourse appends c to the catalog. Codes must be non-empty and unique and
// capacity must be positive.
func (s *CourseMemStore) AddCourse(c *domain.Course) error {
	if c == nil || c.Code() == "" {
		return fmt.Errorf("%w: empty course code", domain.ErrInvalidCourse)
	}
	if c.Capacity() <= 0 {
		return fmt.Errorf("%w: %s has capacity %d", domain.ErrInvalidCourse, c.Code(), c.Capacity())
	}
	if _, ok := s.byCode[c.Code()]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCourse, c.Code())
	}
	s.byCode[c.Code()] = c
	s.order = append(s.order, c)
	return nil
}

// FindCourseByCode returns the course with exactly this code.
func (s *CourseMemStore) FindCourseByCode(code domain.CourseCode) (*domain.Course, error) {
	c, ok := s.byCode[code]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return c, nil
}

// Courses returns the catalog in insertion order. The slice is a copy; the
// courses are shared.
func (s *CourseMemStore) Courses() []*domain.Course {
	out := make([]*domain.Course, len(s.order))
	copy(out, s.order)
	return out
}

// Compile-time assertion that CourseMemStore implements domain.CourseStore.
var _ domain.CourseStore = (*CourseMemStore)(nil)
