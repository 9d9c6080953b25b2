package shader

import (
	"fmt"
	"strings"
)

const logSeparator = "\n-----------------------------------------\n\n"

// LookupError is returned when a stage's source identifier cannot be resolved.
type LookupError struct {
	Stage Stage
	ID    string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("Unable to load %s shader '%s'", strings.ToLower(e.Stage.String()), e.ID)
}

func (e *LookupError) Unwrap() error { return e.Err }

// CompileError is returned when the context rejects a stage's source.
// Source holds the text after preprocessing, as it was handed to the compiler.
type CompileError struct {
	Stage  Stage
	ID     string
	Log    string
	Source string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader '%s' failed to compile.  The error log is:\n\n%s%s%s",
		e.Stage, e.ID, e.Log, logSeparator, e.Source)
}

// LinkError is returned when the attached stages fail to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "Shader program failed to link.  The error log is:\n\n" + e.Log
}

// InvalidStageError signals a stage value that is neither Vertex nor Fragment.
type InvalidStageError struct {
	Stage Stage
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("invalid shader stage 0x%04X", uint32(e.Stage))
}
