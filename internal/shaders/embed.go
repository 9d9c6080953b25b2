// Package shaders provides the built-in GLSL sources served under their file names.
package shaders

import "embed"

// FS holds the built-in shader sources.
//
// basic.vert and basic.frag carry no #version line; the builder adds one on
// GLSL ES 3.0 contexts. basic330.vert and basic330.frag pin "#version 330
// core" for desktop core profile contexts, which reject unversioned sources.
//
//go:embed *.vert *.frag
var FS embed.FS
