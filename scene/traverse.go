package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DrawCommand is one indexed draw in traversal order. Model is the node's
// world transform, MVP the clip-space product viewProjection * Model; both
// are needed downstream (normals vs. positions). Tint rides along unchanged.
type DrawCommand struct {
	Drawable Drawable
	Model    mgl32.Mat4
	MVP      mgl32.Mat4
	Tint     mgl32.Mat4
}

// Walk traverses the subtree rooted at n in pre-order depth-first order,
// accumulating world transforms top-down: world = parent * local. fn is
// called once per drawable node, siblings in insertion order. Traversal is
// stateless; draw order is insertion order, which is what back-to-front
// transparency relies on.
func (n *Node) Walk(viewProjection, parent mgl32.Mat4, fn func(DrawCommand)) {
	world := parent.Mul4(n.LocalMatrix())

	if n.drawable != nil {
		fn(DrawCommand{
			Drawable: n.drawable,
			Model:    world,
			MVP:      viewProjection.Mul4(world),
			Tint:     n.Tint,
		})
	}

	for _, c := range n.children {
		c.Walk(viewProjection, world, fn)
	}
}
