package types

// Course is a catalog entry with a fixed capacity and a live enrollment
// counter. The counter always satisfies 0 <= Enrolled() <= Capacity() and only
// moves through RegisterStudent and DropStudent.
//
// A Course only knows how many seats are taken, not by whom.
type Course struct {
	code        CourseCode
	title       string
	description string
	capacity    int
	schedule    string
	enrolled    int
}

// NewCourse returns a course with no seats taken.
func NewCourse(code CourseCode, title, description string, capacity int, schedule string) *Course {
	return &Course{
		code:        code,
		title:       title,
		description: description,
		capacity:    capacity,
		schedule:    schedule,
	}
}

func (c *Course) Code() CourseCode    { return c.code }
func (c *Course) Title() string       { return c.title }
func (c *Course) Description() string { return c.description }
func (c *Course) Capacity() int       { return c.capacity }
func (c *Course) Schedule() string    { return c.schedule }
func (c *Course) Enrolled() int       { return c.enrolled }

// HasSlot reports whether at least one seat is free.
func (c *Course) HasSlot() bool { return c.enrolled < c.capacity }

// RegisterStudent takes one seat. It returns false and changes nothing when
// the course is full.
func (c *Course) RegisterStudent() bool {
	if c.enrolled >= c.capacity {
		return false
	}
	c.enrolled++
	return true
}

// DropStudent frees one seat. It returns false and changes nothing when no
// seat is taken.
func (c *Course) DropStudent() bool {
	if c.enrolled <= 0 {
		return false
	}
	c.enrolled--
	return true
}
