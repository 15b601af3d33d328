package types

// Student holds non-owning references to the courses it is registered in.
// References are compared by identity and kept in registration order.
type Student struct {
	id      StudentID
	name    string
	courses []*Course
}

// NewStudent returns a student with no registrations.
func NewStudent(id StudentID, name string) *Student {
	return &Student{id: id, name: name}
}

func (s *Student) ID() StudentID { return s.id }
func (s *Student) Name() string  { return s.name }

// RegisteredCourses returns a copy of the registration set in the order the
// courses were added.
func (s *Student) RegisteredCourses() []*Course {
	out := make([]*Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// IsRegistered reports whether course is in the registration set.
func (s *Student) IsRegistered(course *Course) bool {
	return s.indexOf(course) >= 0
}

// RegisterForCourse takes a seat in course and records it. It fails without
// side effects when the course is full or already registered; the caller
// cannot tell the two apart.
func (s *Student) RegisterForCourse(course *Course) bool {
	if course == nil || !course.HasSlot() || s.IsRegistered(course) {
		return false
	}
	if !course.RegisterStudent() {
		return false
	}
	s.courses = append(s.courses, course)
	return true
}

// DropCourse frees the seat held in course and forgets it. It fails when the
// course is not registered. A registered course whose counter is already zero
// also fails and stays in the set.
func (s *Student) DropCourse(course *Course) bool {
	i := s.indexOf(course)
	if i < 0 {
		return false
	}
	if !course.DropStudent() {
		return false
	}
	s.courses = append(s.courses[:i], s.courses[i+1:]...)
	return true
}

func (s *Student) indexOf(course *Course) int {
	if course == nil {
		return -1
	}
	for i, c := range s.courses {
		if c == course {
			return i
		}
	}
	return -1
}
