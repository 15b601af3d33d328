package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"coursereg/internal/domain"
)

const menuText = `
Course Registration System Menu:
1. Display Available Courses
2. Register for a Course
3. Drop a Course
4. Display Registered Courses
5. Exit
Choose an option: `

const (
	msgStudentNotFound = "Student ID not found."
	msgCourseNotFound  = "Course code not found."
	msgInvalidOption   = "Invalid option. Please try again."
	msgGoodbye         = "Thank you for using the Course Registration System. Goodbye!"

	msgRegistered     = "Successfully registered for the course."
	msgRegisterFailed = "Failed to register for the course. It may be full or you may already be registered."
	msgDropped        = "Successfully dropped the course."
	msgDropFailed     = "Failed to drop the course. You may not be registered in this course."
)

const (
	optionListCourses = iota + 1
	optionRegister
	optionDrop
	optionListRegistered
	optionExit
)

// Menu is the interactive controller over a registration service.
type Menu struct {
	svc domain.RegistrationService
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

// New returns a menu reading lines from in and writing the transcript to out.
// Each menu gets its own session id in log output.
func New(svc domain.RegistrationService, in io.Reader, out io.Writer, log zerolog.Logger) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: log.With().Str("session", uuid.NewString()).Logger(),
	}
}

// Run loops until the exit option is chosen or the input ends. It only
// returns an error when reading the input fails.
func (m *Menu) Run() error {
	m.log.Info().Msg("session started")
	for {
		fmt.Fprint(m.out, menuText)
		line, err := m.readLine()
		if err != nil {
			return m.end(err)
		}

		switch parseOption(line) {
		case optionListCourses:
			WriteCatalog(m.out, m.svc.Courses())
		case optionRegister:
			err = m.register()
		case optionDrop:
			err = m.drop()
		case optionListRegistered:
			err = m.listRegistered()
		case optionExit:
			fmt.Fprintln(m.out, msgGoodbye)
			m.log.Info().Msg("session ended")
			return nil
		default:
			m.log.Debug().Str("input", line).Msg("invalid menu option")
			fmt.Fprintln(m.out, msgInvalidOption)
		}
		if err != nil {
			return m.end(err)
		}
	}
}

func (m *Menu) register() error {
	st, c, err := m.resolve("Enter course code to register: ")
	if err != nil || st == nil || c == nil {
		return err
	}
	if m.svc.Register(st, c) {
		fmt.Fprintln(m.out, msgRegistered)
	} else {
		fmt.Fprintln(m.out, msgRegisterFailed)
	}
	return nil
}

func (m *Menu) drop() error {
	st, c, err := m.resolve("Enter course code to drop: ")
	if err != nil || st == nil || c == nil {
		return err
	}
	if m.svc.Drop(st, c) {
		fmt.Fprintln(m.out, msgDropped)
	} else {
		fmt.Fprintln(m.out, msgDropFailed)
	}
	return nil
}

func (m *Menu) listRegistered() error {
	st, err := m.promptStudent()
	if err != nil || st == nil {
		return err
	}
	WriteRegistrations(m.out, st)
	return nil
}

// resolve prompts for a student and then a course. A nil student or course
// with a nil error means the lookup failed and was already reported.
func (m *Menu) resolve(coursePrompt string) (*domain.Student, *domain.Course, error) {
	st, err := m.promptStudent()
	if err != nil || st == nil {
		return nil, nil, err
	}

	fmt.Fprint(m.out, coursePrompt)
	code, err := m.readLine()
	if err != nil {
		return nil, nil, err
	}
	c, err := m.svc.FindCourse(domain.CourseCode(code))
	if errors.Is(err, domain.ErrCourseNotFound) {
		fmt.Fprintln(m.out, msgCourseNotFound)
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return st, c, nil
}

func (m *Menu) promptStudent() (*domain.Student, error) {
	fmt.Fprint(m.out, "Enter your student ID: ")
	id, err := m.readLine()
	if err != nil {
		return nil, err
	}
	st, err := m.svc.FindStudent(domain.StudentID(id))
	if errors.Is(err, domain.ErrStudentNotFound) {
		fmt.Fprintln(m.out, msgStudentNotFound)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// readLine returns the next input line without its terminator, or io.EOF
// once the input is exhausted. Lines have no length limit.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// end maps input exhaustion to a clean stop.
func (m *Menu) end(err error) error {
	if errors.Is(err, io.EOF) {
		m.log.Info().Msg("input closed")
		return nil
	}
	m.log.Error().Err(err).Msg("session aborted")
	return err
}

// parseOption returns the menu number typed on line, or 0 when the line is
// not a number.
func parseOption(line string) int {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}
	return n
}
