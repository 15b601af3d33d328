// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, builds the logger, seeds the course
// and student stores from the catalog and exposes them, together with the
// registration service, via the App struct for commands to use.
package app
