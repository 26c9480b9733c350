// Package render produces the generated pack artifacts: the pack manifest
// markdown, the GNOME/MATE album XML, and KDE metadata.desktop files. All
// output goes through a pongo2 template set embedded in the binary.
//
// Interpolation comes in two forms: {{ x }} is autoescaped (used where the
// target format must stay well-formed, e.g. XML), {{ x|safe }} inserts the
// value verbatim. The pack manifest template uses the raw form throughout;
// callers are responsible for keeping '|' out of table cells and triple
// backticks out of the comments block.
package render
