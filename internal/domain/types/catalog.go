package types

// CourseRecord is the serialised form of a catalog course.
type CourseRecord struct {
	Code        CourseCode `yaml:"code"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Capacity    int        `yaml:"capacity"`
	Schedule    string     `yaml:"schedule"`
}

// StudentRecord is the serialised form of a roster entry.
type StudentRecord struct {
	ID   StudentID `yaml:"id"`
	Name string    `yaml:"name"`
}

// Catalog is the startup seed: every course and student known to a run.
type Catalog struct {
	Courses  []CourseRecord  `yaml:"courses"`
	Students []StudentRecord `yaml:"students"`
}
