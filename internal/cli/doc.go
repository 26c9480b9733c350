// Package cli wires up the cobra command tree for the wallpack binary.
// Each command lives in its own file and registers itself with the root
// command in init().
package cli
