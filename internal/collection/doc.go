// Package collection resolves pack selections against the contributors
// directory of a wallpapers repository, producing fully derived entries
// (display metadata plus install names and paths) in deterministic order.
package collection
