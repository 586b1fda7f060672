package render

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const vertexShaderSource = `
#version 410 core

layout(location = 0) in vec3 vertexPosition;
layout(location = 1) in vec3 vertexNormal;
layout(location = 2) in vec4 vertexColor;

uniform mat4 modelMatrix;
uniform mat4 mvpMatrix;
uniform mat4 tintMatrix;

out vec3 normal;
out vec4 color;

void main() {
	gl_Position = mvpMatrix * vec4(vertexPosition, 1.0);

	normal = normalize(mat3(modelMatrix) * vertexNormal);
	color = tintMatrix * vertexColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core

in vec3 normal;
in vec4 color;

out vec4 fragmentColor;

const vec3 lightDirection = normalize(vec3(0.8, -0.5, 0.6));
const float ambient = 0.35;

void main() {
	float diffuse = max(0.0, dot(normal, -lightDirection));
	vec3 lit = color.rgb * (ambient + (1.0 - ambient) * diffuse);
	fragmentColor = vec4(lit, color.a);
}
` + "\x00"

// Program is a linked shader pair with its uniform locations resolved.
type Program struct {
	handle uint32

	modelMatrix int32
	mvpMatrix   int32
	tintMatrix  int32
}

// NewProgram compiles and links the fixed vertex/fragment pair. Requires a
// current GL context.
func NewProgram() (*Program, error) {
	vertex, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fragment)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(handle, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(handle)
		return nil, errors.Errorf("link program: %s", log)
	}

	p := &Program{handle: handle}
	p.modelMatrix = gl.GetUniformLocation(handle, gl.Str("modelMatrix\x00"))
	p.mvpMatrix = gl.GetUniformLocation(handle, gl.Str("mvpMatrix\x00"))
	p.tintMatrix = gl.GetUniformLocation(handle, gl.Str("tintMatrix\x00"))

	return p, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	handle := gl.CreateShader(kind)

	csource, free := gl.Strs(source)
	gl.ShaderSource(handle, 1, csource, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(handle, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(handle)
		return 0, errors.Errorf("compile: %s", log)
	}

	return handle, nil
}

func infoLog(
	handle uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var length int32
	getiv(handle, gl.INFO_LOG_LENGTH, &length)
	if length < 1 {
		return "no info log"
	}

	log := strings.Repeat("\x00", int(length+1))
	getLog(handle, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// SetMatrices uploads the per-draw uniforms.
func (p *Program) SetMatrices(model, mvp, tint mgl32.Mat4) {
	gl.UniformMatrix4fv(p.modelMatrix, 1, false, &model[0])
	gl.UniformMatrix4fv(p.mvpMatrix, 1, false, &mvp[0])
	gl.UniformMatrix4fv(p.tintMatrix, 1, false, &tint[0])
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.handle)
}
