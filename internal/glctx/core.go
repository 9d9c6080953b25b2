package glctx

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shaderlink/internal/shader"
)

// Core drives a desktop OpenGL 4.1 core profile context.
type Core struct{}

func newCore() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return Core{}, nil
}

// Info returns the context's version strings.
func (Core) Info() Info {
	return Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

func (Core) ShadingLanguageVersion() string {
	return gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

func (Core) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (Core) ShaderSource(sh uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
}

func (Core) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (Core) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Core) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	return infoLog(logLen, func(n int32, buf *uint8) {
		gl.GetShaderInfoLog(sh, n, nil, buf)
	})
}

func (Core) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (Core) CreateProgram() uint32 { return gl.CreateProgram() }

func (Core) AttachShader(program, sh uint32) { gl.AttachShader(program, sh) }

func (Core) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Core) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Core) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	return infoLog(logLen, func(n int32, buf *uint8) {
		gl.GetProgramInfoLog(program, n, nil, buf)
	})
}

func (Core) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
