// Package glctx adapts go-gl bindings to shader.Context.
package glctx

import (
	"fmt"
	"strings"

	"github.com/Faultbox/shaderlink/internal/shader"
)

// Profiles accepted by New.
const (
	ProfileCore = "core"
	ProfileES   = "es"
)

// Info describes the current context.
type Info struct {
	Version  string
	Renderer string
	GLSL     string
}

// Context is a shader.Context that can also describe itself.
type Context interface {
	shader.Context
	Info() Info
}

// New loads the binding for profile and returns an adapter over the
// current context. A context must already be current on this thread.
func New(profile string) (Context, error) {
	switch strings.ToLower(profile) {
	case ProfileCore, "":
		return newCore()
	case ProfileES:
		return newES()
	default:
		return nil, fmt.Errorf("unknown GL profile %q", profile)
	}
}

// infoLog reads a log of logLen bytes via read and trims the terminator.
func infoLog(logLen int32, read func(n int32, buf *uint8)) string {
	if logLen <= 0 {
		return ""
	}
	buf := make([]byte, logLen)
	read(logLen, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

var (
	_ Context = Core{}
	_ Context = ES{}
)
