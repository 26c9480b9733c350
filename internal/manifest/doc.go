// Package manifest handles parsing of the wallpapers repository inputs: the
// pack file (one "username:index" selection per line) and the per-contributor
// me.json metadata, plus JSON Schema validation of the latter.
package manifest
