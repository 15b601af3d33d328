// Package console runs the interactive registration menu.
//
// Menu
//
//  1. Display Available Courses
//  2. Register for a Course
//  3. Drop a Course
//  4. Display Registered Courses
//  5. Exit
//
// Each choice reads whole lines from the input. Identifiers are matched
// exactly as typed. Anything other than 1 to 5 re-prompts, and the loop ends
// on 5 or when the input is exhausted.
package console
