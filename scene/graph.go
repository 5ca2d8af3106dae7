package scene

import (
	"github.com/lixenwraith/flight-globe/vmath"
)

// NodeID identifies a renderable attached to the graph
type NodeID uint64

// Kind discriminates renderable node types
type Kind uint8

const (
	KindLine Kind = iota
	KindSprite
	KindPoints
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindSprite:
		return "Sprite"
	case KindPoints:
		return "Points"
	default:
		return "Unknown"
	}
}

// Node is implemented by every renderable the graph can hold
type Node interface {
	Kind() Kind
}

// Line is a polyline; Points is replaced, not mutated, when the visible range changes
type Line struct {
	Points  []vmath.Vec3F
	Color   uint32  // 0xRRGGBB
	Opacity float64 // [0, 1]
	Phase   float64 // drives color oscillation in the display layer
	Glow    bool
}

func (*Line) Kind() Kind { return KindLine }

// Sprite is a screen-facing marker at a scene position
type Sprite struct {
	Position vmath.Vec3F
	Scale    float64
	Opacity  float64
	Color    uint32
}

func (*Sprite) Kind() Kind { return KindSprite }

// PointCloud shares a flat xyz buffer owned by a simulator
// NeedsUpdate mirrors the owner's dirty flag until the display layer consumes it
type PointCloud struct {
	Positions   []float64
	Color       uint32
	Opacity     float64
	NeedsUpdate bool
}

func (*PointCloud) Kind() Kind { return KindPoints }

// Len returns the number of points
func (p *PointCloud) Len() int {
	return len(p.Positions) / 3
}

type entry struct {
	id   NodeID
	node Node
}

// Graph is the set of renderables currently attached to the globe
// Iteration order is attach order so later nodes draw on top
type Graph struct {
	nextID  NodeID
	entries []entry
	index   map[NodeID]int
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		entries: make([]entry, 0, 64),
		index:   make(map[NodeID]int),
	}
}

// Attach adds a node and returns its handle
func (g *Graph) Attach(n Node) NodeID {
	g.nextID++
	id := g.nextID
	g.index[id] = len(g.entries)
	g.entries = append(g.entries, entry{id: id, node: n})
	return id
}

// Detach removes a node, returns false if it was not attached
// Detaching an unknown or already detached id is a no-op
func (g *Graph) Detach(id NodeID) bool {
	pos, ok := g.index[id]
	if !ok {
		return false
	}
	delete(g.index, id)

	// Preserve draw order
	copy(g.entries[pos:], g.entries[pos+1:])
	g.entries[len(g.entries)-1] = entry{}
	g.entries = g.entries[:len(g.entries)-1]
	for i := pos; i < len(g.entries); i++ {
		g.index[g.entries[i].id] = i
	}
	return true
}

// Contains reports whether id is attached
func (g *Graph) Contains(id NodeID) bool {
	_, ok := g.index[id]
	return ok
}

// Get returns the node for id
func (g *Graph) Get(id NodeID) (Node, bool) {
	pos, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return g.entries[pos].node, true
}

// Len returns the number of attached nodes
func (g *Graph) Len() int {
	return len(g.entries)
}

// CountKind returns the number of attached nodes of kind k
func (g *Graph) CountKind(k Kind) int {
	n := 0
	for _, e := range g.entries {
		if e.node.Kind() == k {
			n++
		}
	}
	return n
}

// Each visits nodes in attach order until fn returns false
func (g *Graph) Each(fn func(id NodeID, n Node) bool) {
	for _, e := range g.entries {
		if !fn(e.id, e.node) {
			return
		}
	}
}
