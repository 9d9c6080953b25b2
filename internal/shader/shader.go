// Package shader compiles vertex and fragment shader sources and links them
// into a program object.
package shader

// Stage identifies one half of a two-stage pipeline. The values are the
// OpenGL enums so a Context can pass them straight through.
type Stage uint32

const (
	Fragment Stage = 0x8B30 // GL_FRAGMENT_SHADER
	Vertex   Stage = 0x8B31 // GL_VERTEX_SHADER
)

// String returns the stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "Vertex"
	case Fragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

func (s Stage) valid() bool {
	return s == Vertex || s == Fragment
}

// Context is the subset of a graphics context the builder drives.
type Context interface {
	// ShadingLanguageVersion returns GL_SHADING_LANGUAGE_VERSION.
	ShadingLanguageVersion() string

	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}

// SourceLookup resolves shader source text by identifier.
type SourceLookup interface {
	Lookup(id string) (string, error)
}

// SourceFunc adapts a function to SourceLookup.
type SourceFunc func(id string) (string, error)

// Lookup calls f(id).
func (f SourceFunc) Lookup(id string) (string, error) {
	return f(id)
}

// Reporter surfaces a build failure to the user.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err error)

// Report calls f(err).
func (f ReporterFunc) Report(err error) {
	f(err)
}

type nopReporter struct{}

func (nopReporter) Report(error) {}
