/*
	tree of transformable nodes

	each node carries local transform state; world transforms are
	accumulated top-down during Walk. children are owned exclusively by
	their parent and visited in insertion order. the topology is built
	once at startup and only the transform fields mutate afterwards.
*/
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/askeland/fjord/transform"
)

var (
	// ErrAttached is returned when a node that already has a parent is
	// added to a second one.
	ErrAttached = errors.New("scene: node already attached to a parent")

	// ErrCycle is returned when adding a child would make a node its own
	// ancestor.
	ErrCycle = errors.New("scene: node would become its own ancestor")
)

// Drawable identifies GPU-resident geometry. Bind makes its buffers current,
// IndexCount is the number of indices for one indexed draw call. The scene
// references drawables, it never owns them.
type Drawable interface {
	Bind()
	IndexCount() int32
}

// Node is one entity in the hierarchy. A node without a drawable is a pure
// grouping node and is skipped by the draw pass but still contributes its
// transform to descendants.
type Node struct {
	// Position is the local translation relative to the parent.
	Position mgl32.Vec3
	// Rotation holds euler angles in radians, composed Rz*Ry*Rx
	// (see transform.Euler).
	Rotation mgl32.Vec3
	// Scale is the per-axis scale factor, applied before rotation.
	Scale mgl32.Vec3
	// ReferencePoint is the local-space pivot the rotation happens about.
	ReferencePoint mgl32.Vec3
	// Tint is the color matrix handed to the shader, identity by default.
	Tint mgl32.Mat4

	drawable Drawable
	children []*Node
	attached bool
}

// NewNode returns a grouping node with identity transform.
func NewNode() *Node {
	return &Node{
		Scale: mgl32.Vec3{1, 1, 1},
		Tint:  mgl32.Ident4(),
	}
}

// NewDrawableNode returns a node that renders d.
func NewDrawableNode(d Drawable) *Node {
	n := NewNode()
	n.drawable = d
	return n
}

// SetDrawable attaches GPU geometry to the node, nil detaches it.
func (n *Node) SetDrawable(d Drawable) {
	n.drawable = d
}

// Drawable returns the node's geometry, nil for grouping nodes.
func (n *Node) Drawable() Drawable {
	return n.drawable
}

// AddChild appends c to the node's children, taking exclusive ownership.
// Insertion order is traversal and draw order. Adding a node to itself, to a
// second parent, or anywhere below itself fails immediately; the graph stays
// a tree and traversal never has to check.
func (n *Node) AddChild(c *Node) error {
	if c == nil {
		return errors.New("scene: nil child")
	}
	if c == n || c.contains(n) {
		return ErrCycle
	}
	if c.attached {
		return ErrAttached
	}

	c.attached = true
	n.children = append(n.children, c)
	return nil
}

// Children returns the node's children in insertion order. The slice is
// owned by the node and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) contains(target *Node) bool {
	for _, c := range n.children {
		if c == target || c.contains(target) {
			return true
		}
	}
	return false
}

// LocalMatrix composes the node's transform fields into its local matrix,
// rotating about ReferencePoint.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	return transform.ComposePivot(n.Position, n.Rotation, n.Scale, n.ReferencePoint)
}
