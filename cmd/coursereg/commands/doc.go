// Package commands defines the coursereg CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)     Run the interactive registration menu on stdin/stdout
//   - courses    Print the course catalog
//   - students   Print the student roster
//
// # Implementation
//
// The root command reads configuration from the environment, applies flag
// overrides and builds the dependency graph (logger, seeded stores,
// registration service) before any subcommand runs. All state lives for one
// invocation only.
package commands
