package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/askeland/fjord/scene"
)

// Renderer holds the fixed pipeline state for drawing a scene graph pass.
type Renderer struct {
	program *Program
}

// NewRenderer initializes GL function pointers, sets global state and links
// the shader program. Call it on the render goroutine after the context is
// current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "init gl")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.MULTISAMPLE)

	gl.ClearColor(0.035, 0.046, 0.078, 1.0)

	program, err := NewProgram()
	if err != nil {
		return nil, err
	}

	return &Renderer{program: program}, nil
}

func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the buffers and activates the program for the draw
// commands that follow.
func (r *Renderer) BeginFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// Draw issues one scene graph draw command.
func (r *Renderer) Draw(cmd scene.DrawCommand) {
	r.program.SetMatrices(cmd.Model, cmd.MVP, cmd.Tint)
	cmd.Drawable.Bind()
	gl.DrawElementsWithOffset(gl.TRIANGLES, cmd.Drawable.IndexCount(), gl.UNSIGNED_INT, 0)
}

func (r *Renderer) Delete() {
	r.program.Delete()
}
