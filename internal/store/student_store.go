package store

import (
	"fmt"

	"coursereg/internal/domain"
)

// StudentMemStore keeps the roster in memory, in insertion order.
type StudentMemStore struct {
	order []*domain.Student
	byID  map[domain.StudentID]*domain.Student
}

// NewStudentMemStore returns an empty roster.
func NewStudentMemStore() *StudentMemStore {
	return &StudentMemStore{byID: map[domain.StudentID]*domain.Student{}}
}

// AddStudent appends st to the roster. IDs must be non-empty and unique.
func (s *StudentMemStore) AddStudent(st *domain.Student) error {
	if st == nil || st.ID() == "" {
		return fmt.Errorf("%w: empty student ID", domain.ErrInvalidStudent)
	}
	if _, ok := s.byID[st.ID()]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateStudent, st.ID())
	}
	s.byID[st.ID()] = st
	s.order = append(s.order, st)
	return nil
}

// FindStudentByID returns the student with exactly this ID.
func (s *StudentMemStore) FindStudentByID(id domain.StudentID) (*domain.Student, error) {
	st, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return st, nil
}

// Students returns the roster in insertion order.
func (s *StudentMemStore) Students() []*domain.Student {
	out := make([]*domain.Student, len(s.order))
	copy(out, s.order)
	return out
}

// Compile-time assertion that StudentMemStore implements domain.StudentStore.
var _ domain.StudentStore = (*StudentMemStore)(nil)
