package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/geom"
)

// Handle is a stable index into a Graph. Handles are never reused.
type Handle int

// NoParent marks the root node.
const NoParent Handle = -1

// Material describes how a mesh is shaded.
type Material struct {
	Color       color.RGBA
	Unlit       bool // ignores the sun and ambient terms
	Wind        bool // grass sway applied per vertex each frame
	DoubleSided bool
}

// Transform is a position, an XYZ Euler rotation and a scale.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// Identity returns a transform with unit scale.
func Identity() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// At returns a unit-scale transform at p.
func At(x, y, z float64) Transform {
	t := Identity()
	t.Position = mgl64.Vec3{x, y, z}
	return t
}

// Matrix composes translate · rotateX · rotateY · rotateZ · scale.
func (t Transform) Matrix() mgl64.Mat4 {
	r := mgl64.HomogRotate3DX(t.Rotation.X()).
		Mul4(mgl64.HomogRotate3DY(t.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DZ(t.Rotation.Z()))
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(r).
		Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Node is one entry of the arena. A node without a mesh is a group.
type Node struct {
	Name      string
	Transform Transform
	Mesh      *geom.Mesh
	Material  *Material
	Hidden    bool

	parent    Handle
	children  []Handle
	instances []mgl64.Mat4
}

// Parent returns the node's parent handle.
func (n *Node) Parent() Handle {
	return n.parent
}

// Children returns the node's direct children.
func (n *Node) Children() []Handle {
	return n.children
}

// Instances returns the per-instance local matrices, nil for a plain mesh.
func (n *Node) Instances() []mgl64.Mat4 {
	return n.instances
}

// Graph owns every node of a scene.
type Graph struct {
	nodes []Node
}

// NewGraph returns a graph holding only the root group.
func NewGraph() *Graph {
	g := &Graph{}
	g.nodes = append(g.nodes, Node{Name: "root", Transform: Identity(), parent: NoParent})
	return g
}

// Root returns the handle of the root group.
func (g *Graph) Root() Handle {
	return 0
}

// Len returns the number of nodes including the root.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Add appends n under parent and returns its handle.
func (g *Graph) Add(parent Handle, n Node) Handle {
	h := Handle(len(g.nodes))
	n.parent = parent
	n.children = nil
	if n.Transform.Scale == (mgl64.Vec3{}) {
		n.Transform.Scale = mgl64.Vec3{1, 1, 1}
	}
	g.nodes = append(g.nodes, n)
	g.nodes[parent].children = append(g.nodes[parent].children, h)
	return h
}

// Group adds an empty group node.
func (g *Graph) Group(parent Handle, name string, t Transform) Handle {
	return g.Add(parent, Node{Name: name, Transform: t})
}

// Node returns the node for h. The pointer is invalidated by Add.
func (g *Graph) Node(h Handle) *Node {
	return &g.nodes[h]
}

// SetInstances turns h into an instanced mesh drawn once per transform.
func (g *Graph) SetInstances(h Handle, ts []Transform) {
	mats := make([]mgl64.Mat4, len(ts))
	for i, t := range ts {
		mats[i] = t.Matrix()
	}
	g.nodes[h].instances = mats
}

// World returns the world matrix of h.
func (g *Graph) World(h Handle) mgl64.Mat4 {
	m := g.nodes[h].Transform.Matrix()
	for p := g.nodes[h].parent; p != NoParent; p = g.nodes[p].parent {
		m = g.nodes[p].Transform.Matrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the world-space origin of h.
func (g *Graph) WorldPosition(h Handle) mgl64.Vec3 {
	return g.World(h).Col(3).Vec3()
}

// Walk visits h and its visible descendants depth first with their world
// matrices. Hidden nodes are skipped together with their subtree.
func (g *Graph) Walk(h Handle, fn func(h Handle, n *Node, world mgl64.Mat4)) {
	parentWorld := mgl64.Ident4()
	if p := g.nodes[h].parent; p != NoParent {
		parentWorld = g.World(p)
	}
	g.walk(h, parentWorld, fn)
}

func (g *Graph) walk(h Handle, parentWorld mgl64.Mat4, fn func(Handle, *Node, mgl64.Mat4)) {
	n := &g.nodes[h]
	if n.Hidden {
		return
	}
	world := parentWorld.Mul4(n.Transform.Matrix())
	fn(h, n, world)
	for _, c := range n.children {
		g.walk(c, world, fn)
	}
}

// Meshes returns every descendant of h that carries a mesh, in walk order.
func (g *Graph) Meshes(h Handle) []Handle {
	var out []Handle
	var visit func(Handle)
	visit = func(c Handle) {
		if g.nodes[c].Mesh != nil {
			out = append(out, c)
		}
		for _, cc := range g.nodes[c].children {
			visit(cc)
		}
	}
	visit(h)
	return out
}
