package glctx

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/Faultbox/shaderlink/internal/shader"
)

// ES drives an OpenGL ES 3 context.
type ES struct{}

func newES() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL ES: %w", err)
	}
	return ES{}, nil
}

// Info returns the context's version strings.
func (ES) Info() Info {
	return Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

func (ES) ShadingLanguageVersion() string {
	return gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

func (ES) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (ES) ShaderSource(sh uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
}

func (ES) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (ES) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (ES) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	return infoLog(logLen, func(n int32, buf *uint8) {
		gl.GetShaderInfoLog(sh, n, nil, buf)
	})
}

func (ES) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (ES) CreateProgram() uint32 { return gl.CreateProgram() }

func (ES) AttachShader(program, sh uint32) { gl.AttachShader(program, sh) }

func (ES) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (ES) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (ES) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	return infoLog(logLen, func(n int32, buf *uint8) {
		gl.GetProgramInfoLog(program, n, nil, buf)
	})
}

func (ES) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
