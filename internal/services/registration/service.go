package registration

import (
	"github.com/rs/zerolog"

	"coursereg/internal/domain"
)

// Service resolves students and courses and applies registration changes.
//
// It owns no state of its own; everything lives in the two stores, and every
// change goes through domain.Student so the per-course counters and the
// students' registration sets move together.
type Service struct {
	courses  domain.CourseStore
	students domain.StudentStore
	log      zerolog.Logger
}

// New returns a registration service over the given stores.
func New(courses domain.CourseStore, students domain.StudentStore, log zerolog.Logger) *Service {
	return &Service{
		courses:  courses,
		students: students,
		log:      log.With().Str("component", "registration").Logger(),
	}
}

// Courses lists the catalog in insertion order.
func (s *Service) Courses() []*domain.Course { return s.courses.Courses() }

// Students lists the roster in insertion order.
func (s *Service) Students() []*domain.Student { return s.students.Students() }

// FindStudent resolves id or returns domain.ErrStudentNotFound.
func (s *Service) FindStudent(id domain.StudentID) (*domain.Student, error) {
	st, err := s.students.FindStudentByID(id)
	if err != nil {
		s.log.Debug().Str("student_id", id.String()).Msg("student lookup missed")
		return nil, err
	}
	return st, nil
}

// FindCourse resolves code or returns domain.ErrCourseNotFound.
func (s *Service) FindCourse(code domain.CourseCode) (*domain.Course, error) {
	c, err := s.courses.FindCourseByCode(code)
	if err != nil {
		s.log.Debug().Str("course_code", code.String()).Msg("course lookup missed")
		return nil, err
	}
	return c, nil
}

// Register takes a seat in c for st.
func (s *Service) Register(st *domain.Student, c *domain.Course) bool {
	ok := st.RegisterForCourse(c)
	s.event(ok, st, c).Msg("register")
	return ok
}

// Drop releases the seat st holds in c.
func (s *Service) Drop(st *domain.Student, c *domain.Course) bool {
	ok := st.DropCourse(c)
	if !ok && st.IsRegistered(c) {
		// Registered but the counter was already zero.
		s.log.Error().
			Str("student_id", st.ID().String()).
			Str("course_code", c.Code().String()).
			Msg("drop refused by course counter")
	}
	s.event(ok, st, c).Msg("drop")
	return ok
}

func (s *Service) event(ok bool, st *domain.Student, c *domain.Course) *zerolog.Event {
	e := s.log.Debug()
	if ok {
		e = s.log.Info()
	}
	return e.
		Bool("ok", ok).
		Str("student_id", st.ID().String()).
		Str("course_code", c.Code().String()).
		Int("enrolled", c.Enrolled()).
		Int("capacity", c.Capacity())
}

// Compile-time assertion that Service implements domain.RegistrationService.
var _ domain.RegistrationService = (*Service)(nil)
