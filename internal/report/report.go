// Package report surfaces shader build failures to the user.
package report

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/shaderlink/internal/shader"
)

// Log writes failures to a zap logger.
type Log struct {
	L *zap.Logger
}

// Report logs err at error level with fields describing the failing step.
func (r Log) Report(err error) {
	if r.L == nil || err == nil {
		return
	}
	r.L.Error(err.Error(), Fields(err)...)
}

// Fields returns structured fields for a build error.
func Fields(err error) []zap.Field {
	var (
		lookupErr  *shader.LookupError
		compileErr *shader.CompileError
		linkErr    *shader.LinkError
		stageErr   *shader.InvalidStageError
	)

	switch {
	case errors.As(err, &lookupErr):
		return []zap.Field{
			zap.String("kind", "lookup"),
			zap.Stringer("stage", lookupErr.Stage),
			zap.String("id", lookupErr.ID),
			zap.NamedError("cause", lookupErr.Err),
		}
	case errors.As(err, &compileErr):
		return []zap.Field{
			zap.String("kind", "compile"),
			zap.Stringer("stage", compileErr.Stage),
			zap.String("id", compileErr.ID),
		}
	case errors.As(err, &linkErr):
		return []zap.Field{zap.String("kind", "link")}
	case errors.As(err, &stageErr):
		return []zap.Field{zap.String("kind", "stage")}
	default:
		return []zap.Field{zap.String("kind", "unknown")}
	}
}

// Multi fans a report out to every reporter in order.
type Multi []shader.Reporter

// Report forwards err to each reporter.
func (m Multi) Report(err error) {
	for _, r := range m {
		if r != nil {
			r.Report(err)
		}
	}
}
