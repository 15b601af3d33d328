// Package registration moves seats between students and courses.
//
// It resolves identifiers against the course and student stores and applies
// the Student register/drop rules, logging each outcome. Outcomes stay
// boolean: a failed registration does not say whether the course was full
// or already taken.
package registration
