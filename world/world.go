/*
Package world assembles the demo scene and drives its animation.

The graph topology is fixed at build time. Animate only mutates node
transforms and tints, so the per-frame work touches no allocation and the
tree can be traversed immediately after.
*/
package world

import (
	"math"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/askeland/fjord/anim"
	"github.com/askeland/fjord/config"
	"github.com/askeland/fjord/scene"
	"github.com/askeland/fjord/transform"
)

// Shipped quads face +Z while a zero billboard yaw looks down -Z, so the
// sprite needs half a turn to face the camera.
const quadYawCorrection = float32(math.Pi)

// slow drift of the particle tint, much slower than the showpiece pulse
var particleColorFreq = mgl32.Vec3{0.009, 0.007, -0.009}

// particle drift amplitude per axis
var particleDrift = mgl32.Vec3{1.23, 4.56, 7.89}

// Meshes supplies the drawables the world attaches to its nodes. The caller
// owns them; the world never uploads or frees GPU data.
type Meshes struct {
	Terrain   scene.Drawable
	Showpiece scene.Drawable
	HeliBody  scene.Drawable
	MainRotor scene.Drawable
	TailRotor scene.Drawable
	Particle  scene.Drawable
}

type helicopter struct {
	body      *scene.Node
	mainRotor *scene.Node
	tailRotor *scene.Node
	phase     float32
}

type particle struct {
	node  *scene.Node
	home  mgl32.Vec3
	phase float32
}

// World is the scene graph plus the handles Animate needs to mutate it.
type World struct {
	root      *scene.Node
	showpiece *scene.Node
	copters   []helicopter
	motes     []particle
}

// Build constructs the graph described by cfg. Particle homes are scattered
// with the configured seed, so the same config yields the same world.
func Build(cfg config.Scene, meshes Meshes) (*World, error) {
	w := &World{root: scene.NewNode()}

	if meshes.Terrain != nil {
		terrain := scene.NewDrawableNode(meshes.Terrain)
		terrain.Position = mgl32.Vec3{0, -12, 0}
		if err := w.root.AddChild(terrain); err != nil {
			return nil, err
		}
	}

	if meshes.Showpiece != nil {
		w.showpiece = scene.NewDrawableNode(meshes.Showpiece)
		if err := w.root.AddChild(w.showpiece); err != nil {
			return nil, err
		}
	}

	for i := 0; i < cfg.Helicopters; i++ {
		h, err := buildHelicopter(meshes, float32(i)*0.75)
		if err != nil {
			return nil, err
		}
		if err := w.root.AddChild(h.body); err != nil {
			return nil, err
		}
		w.copters = append(w.copters, h)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.Particles; i++ {
		p := particle{
			node: scene.NewDrawableNode(meshes.Particle),
			home: mgl32.Vec3{
				float32(rng.Float64()*120 - 60),
				float32(rng.Float64()*40 - 5),
				float32(rng.Float64()*120 - 60),
			},
			phase: float32(rng.Float64() * 100),
		}
		p.node.Position = p.home
		if err := w.root.AddChild(p.node); err != nil {
			return nil, err
		}
		w.motes = append(w.motes, p)
	}

	return w, nil
}

func buildHelicopter(meshes Meshes, phase float32) (helicopter, error) {
	h := helicopter{
		body:      scene.NewDrawableNode(meshes.HeliBody),
		mainRotor: scene.NewDrawableNode(meshes.MainRotor),
		tailRotor: scene.NewDrawableNode(meshes.TailRotor),
		phase:     phase,
	}

	// Main rotor sits on the roof and spins about its own vertical axis.
	h.mainRotor.Position = mgl32.Vec3{0, 2.3, 0}

	// The tail rotor hub is offset from the blade mesh origin, so it spins
	// around a reference point instead of its own origin.
	h.tailRotor.Position = mgl32.Vec3{0.4, 2.3, 10.4}
	h.tailRotor.ReferencePoint = mgl32.Vec3{0.35, 2.3, 10.4}

	if err := h.body.AddChild(h.mainRotor); err != nil {
		return helicopter{}, err
	}
	if err := h.body.AddChild(h.tailRotor); err != nil {
		return helicopter{}, err
	}
	return h, nil
}

// Root exposes the graph for traversal and tests.
func (w *World) Root() *scene.Node {
	return w.root
}

// Animate advances every driver to the given elapsed time. cameraPos feeds
// the particle billboards.
func (w *World) Animate(elapsed float32, cameraPos mgl32.Vec3) {
	if w.showpiece != nil {
		w.showpiece.Position = mgl32.Vec3{0, 0.5 * math32.Sin(elapsed), 0}
		w.showpiece.Rotation = mgl32.Vec3{0, anim.Spin(elapsed, 1), 0}
		w.showpiece.Tint = transform.Tint(anim.ColorCycle(elapsed, anim.DefaultColorFreq))
	}

	for i := range w.copters {
		h := &w.copters[i]
		sample := anim.Heading(elapsed, h.phase)
		h.body.Position = sample.Position
		h.body.Rotation = sample.Rotation

		h.mainRotor.Rotation = mgl32.Vec3{0, anim.Spin(elapsed, 20), 0}
		h.tailRotor.Rotation = mgl32.Vec3{anim.Spin(elapsed, 28), 0, 0}
	}

	tint := transform.Tint(anim.ColorCycle(elapsed, particleColorFreq))
	for i := range w.motes {
		p := &w.motes[i]
		drift := anim.Oscillate(elapsed, p.phase)
		p.node.Position = p.home.Add(mgl32.Vec3{
			drift.X() * particleDrift.X(),
			drift.Y() * particleDrift.Y(),
			drift.Z() * particleDrift.Z(),
		})
		p.node.Rotation = anim.Billboard(p.node.Position, cameraPos, quadYawCorrection)
		p.node.Tint = tint
	}
}

// Commands walks the graph and emits one draw command per drawable node.
func (w *World) Commands(viewProjection mgl32.Mat4, fn func(scene.DrawCommand)) {
	w.root.Walk(viewProjection, mgl32.Ident4(), fn)
}
