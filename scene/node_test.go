package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type stubDrawable struct {
	name  string
	bound int
}

func (d *stubDrawable) Bind()             { d.bound++ }
func (d *stubDrawable) IndexCount() int32 { return 6 }

func TestAddChild_Ownership(t *testing.T) {
	root := NewNode()
	a := NewNode()
	b := NewNode()

	if err := root.AddChild(a); err != nil {
		t.Fatalf("AddChild(a): %v", err)
	}
	if err := root.AddChild(b); err != nil {
		t.Fatalf("AddChild(b): %v", err)
	}

	if got := root.Children(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("children order = %v, want [a b]", got)
	}
}

func TestAddChild_RejectsSelf(t *testing.T) {
	n := NewNode()
	if err := n.AddChild(n); err != ErrCycle {
		t.Errorf("AddChild(self) = %v, want ErrCycle", err)
	}
}

func TestAddChild_RejectsNil(t *testing.T) {
	if err := NewNode().AddChild(nil); err == nil {
		t.Error("AddChild(nil) = nil, want error")
	}
}

func TestAddChild_RejectsSecondParent(t *testing.T) {
	p1 := NewNode()
	p2 := NewNode()
	c := NewNode()

	if err := p1.AddChild(c); err != nil {
		t.Fatalf("first AddChild: %v", err)
	}
	if err := p2.AddChild(c); err != ErrAttached {
		t.Errorf("second AddChild = %v, want ErrAttached", err)
	}
}

func TestAddChild_RejectsCycle(t *testing.T) {
	root := NewNode()
	mid := NewNode()
	leaf := NewNode()

	if err := root.AddChild(mid); err != nil {
		t.Fatal(err)
	}
	if err := mid.AddChild(leaf); err != nil {
		t.Fatal(err)
	}

	// attaching an ancestor below its own descendant
	if err := leaf.AddChild(root); err != ErrCycle {
		t.Errorf("AddChild(ancestor) = %v, want ErrCycle", err)
	}
}

func TestNewNode_Defaults(t *testing.T) {
	n := NewNode()
	if n.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want (1,1,1)", n.Scale)
	}
	if n.Tint != mgl32.Ident4() {
		t.Error("Tint != identity")
	}
	if n.Drawable() != nil {
		t.Error("fresh node has a drawable")
	}
}

func TestLocalMatrix_PivotRotation(t *testing.T) {
	n := NewNode()
	n.Position = mgl32.Vec3{10, 0, 0}
	n.ReferencePoint = mgl32.Vec3{0, 0, -2}
	n.Rotation = mgl32.Vec3{math.Pi, 0, 0}

	// the pivot itself must stay at position+pivot under the node's own
	// rotation
	got := n.LocalMatrix().Mul4x1(n.ReferencePoint.Vec4(1)).Vec3()
	want := mgl32.Vec3{10, 0, -2}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("pivot world position = %v, want %v", got, want)
	}
}
