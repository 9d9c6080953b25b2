package shader

import (
	"regexp"
	"strings"
)

const (
	// VersionDirective is prepended to sources compiled on an ES 3.0 class context.
	VersionDirective = "#version 300 es\n"

	// DefaultPrecision is prepended to fragment sources that declare no precision.
	DefaultPrecision = "precision highp float;"
)

var (
	es300Pattern      = regexp.MustCompile(`GLSL ES 3\.0`)
	version300Pattern = regexp.MustCompile(`#version\s+300\s+es`)
	leadingVersion    = regexp.MustCompile(`^(?:\s+|//[^\n]*(?:\n|$)|/\*(?s:.*?)\*/)*#version[^\n]*\n?`)
)

// IsES300 reports whether a GL_SHADING_LANGUAGE_VERSION string
// describes a GLSL ES 3.0 dialect.
func IsES300(version string) bool {
	return es300Pattern.MatchString(version)
}

// HasVersion300 reports whether src already carries a "#version 300 es" directive.
func HasVersion300(src string) bool {
	return version300Pattern.MatchString(src)
}

// Preprocess returns src patched for compilation as the given stage.
//
// On ES 3.0 class contexts a "#version 300 es" line is prepended unless one
// is present. Fragment sources that never mention "precision" get a default
// float precision declaration, placed after a #version line that opens the
// source, possibly behind comments.
func Preprocess(stage Stage, src string, es300 bool) (string, error) {
	if !stage.valid() {
		return "", &InvalidStageError{Stage: stage}
	}

	if stage == Fragment && !strings.Contains(src, "precision") {
		src = insertAfterVersion(src, DefaultPrecision)
	}
	if es300 && !HasVersion300(src) {
		src = VersionDirective + src
	}
	return src, nil
}

// insertAfterVersion puts decl at the start of src, or right after the
// #version line when src opens with one. Comments and blank lines may come
// before the directive.
func insertAfterVersion(src, decl string) string {
	loc := leadingVersion.FindStringIndex(src)
	if loc == nil {
		return decl + src
	}
	head := src[:loc[1]]
	if !strings.HasSuffix(head, "\n") {
		head += "\n"
	}
	return head + decl + src[loc[1]:]
}
