package lampshade

import (
	"math"

	"github.com/soypat/lampshade/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// RegionKind identifies one of the joined surfaces of a lampshade mesh.
type RegionKind int

const (
	RegionShell RegionKind = iota
	RegionBottomCap
	RegionTransition
	RegionMountSide
	RegionMountCap
)

func (k RegionKind) String() string {
	switch k {
	case RegionShell:
		return "shell"
	case RegionBottomCap:
		return "bottom cap"
	case RegionTransition:
		return "transition"
	case RegionMountSide:
		return "mount side"
	case RegionMountCap:
		return "mount cap"
	}
	return "unknown region"
}

// Region is the contiguous span of vertices and triangles one surface occupies in a Mesh.
type Region struct {
	Kind          RegionKind
	FirstVertex   int
	NumVertices   int
	FirstTriangle int
	NumTriangles  int
}

// Mesh is an indexed triangle mesh. The second vertex coordinate (Y) is up.
// Vertices are not welded: coincident positions across cells and regions
// appear as separate entries.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
	Regions   []Region
}

// NumTriangles returns the number of triangles in the mesh.
func (m Mesh) NumTriangles() int { return len(m.Triangles) }

// Triangle returns the vertex positions of the i'th triangle.
func (m Mesh) Triangle(i int) [3]r3.Vec {
	t := m.Triangles[i]
	return [3]r3.Vec{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}
}

// Region returns the span occupied by surface kind. ok is false if the mesh has no such region.
func (m Mesh) Region(kind RegionKind) (r Region, ok bool) {
	for _, r = range m.Regions {
		if r.Kind == kind {
			return r, true
		}
	}
	return Region{}, false
}

// Bounds returns the axis aligned bounding box of all vertices. It is the zero Box for an empty mesh.
func (m Mesh) Bounds() d3.Box {
	if len(m.Vertices) == 0 {
		return d3.Box{}
	}
	return d3.Set(m.Vertices).Bounds()
}

// OuterVertex returns the position on the decorated shell at height parameter u
// and azimuth v. The radius is clamped at zero so the surface never folds through the axis.
func OuterVertex(u, v float64, p Params) r3.Vec {
	r := math.Max(0, Profile(u, p)+displacement(u, v, p))
	return r3.Vec{
		X: r * math.Cos(v),
		Y: Mix(p.CylinderHeight/2, -p.CylinderHeight/2, u),
		Z: r * math.Sin(v),
	}
}

// circlePoint returns the point of a horizontal circle of radius r at height y and azimuth a.
func circlePoint(r, y, a float64) r3.Vec {
	return r3.Vec{X: r * math.Cos(a), Y: y, Z: r * math.Sin(a)}
}

// layout returns the region spans of a mesh at the given detail, in emission order.
func layout(detail int) []Region {
	d := detail
	spans := [...]struct {
		kind   RegionKind
		nv, nt int
	}{
		{RegionShell, 4 * d * d, 2 * d * d},
		{RegionBottomCap, d + 1, d},
		{RegionTransition, 4 * d * d, 2 * d * d},
		{RegionMountSide, 4 * d, 2 * d},
		{RegionMountCap, d + 1, d},
	}
	regions := make([]Region, len(spans))
	var nv, nt int
	for i, s := range spans {
		regions[i] = Region{Kind: s.kind, FirstVertex: nv, NumVertices: s.nv, FirstTriangle: nt, NumTriangles: s.nt}
		nv += s.nv
		nt += s.nt
	}
	return regions
}

// newMesh allocates a mesh with every vertex and triangle slot of the given detail.
func newMesh(detail int) Mesh {
	regions := layout(detail)
	last := regions[len(regions)-1]
	return Mesh{
		Vertices:  make([]r3.Vec, last.FirstVertex+last.NumVertices),
		Triangles: make([][3]int, last.FirstTriangle+last.NumTriangles),
		Regions:   regions,
	}
}

// putQuad stores four corners at vertex slot vi and the triangles (1,2,3), (1,3,4) at slot ti.
func (m Mesh) putQuad(vi, ti int, c [4]r3.Vec) {
	copy(m.Vertices[vi:vi+4], c[:])
	m.Triangles[ti] = [3]int{vi, vi + 1, vi + 2}
	m.Triangles[ti+1] = [3]int{vi, vi + 2, vi + 3}
}

// putRow stores row i of a detail x detail grid region. Each cell owns four fresh vertices.
func (m Mesh) putRow(r Region, p Params, i int, cell func(p Params, i, j int) [4]r3.Vec) {
	d := p.Detail
	for j := 0; j < d; j++ {
		k := i*d + j
		m.putQuad(r.FirstVertex+4*k, r.FirstTriangle+2*k, cell(p, i, j))
	}
}

// putFan stores a fan of detail triangles around center. The ring has one sample per
// angular step and the last triangle closes on the first sample. Reversed fans wind
// (center, next, current) instead of (center, current, next).
func (m Mesh) putFan(r Region, detail int, center r3.Vec, ring func(a float64) r3.Vec, reversed bool) {
	d := detail
	c := r.FirstVertex
	m.Vertices[c] = center
	for j := 0; j < d; j++ {
		m.Vertices[c+1+j] = ring(angleAt(j, d))
	}
	for j := 0; j < d; j++ {
		cur, next := c+1+j, c+1+(j+1)%d
		if reversed {
			cur, next = next, cur
		}
		m.Triangles[r.FirstTriangle+j] = [3]int{c, cur, next}
	}
}

// putMountSide stores the collar wall as detail vertical strips.
func (m Mesh) putMountSide(r Region, p Params) {
	d := p.Detail
	bottom := p.CylinderHeight/2 + p.TransitionHeight
	top := bottom + p.MountHeight
	rad := p.MountOuterDiameter / 2
	for j := 0; j < d; j++ {
		a1, a2 := angleAt(j, d), angleAt(j+1, d)
		m.putQuad(r.FirstVertex+4*j, r.FirstTriangle+2*j, [4]r3.Vec{
			circlePoint(rad, bottom, a1),
			circlePoint(rad, top, a1),
			circlePoint(rad, top, a2),
			circlePoint(rad, bottom, a2),
		})
	}
}

func (m Mesh) putBottomCap(r Region, p Params) {
	ring := func(a float64) r3.Vec { return OuterVertex(1, a, p) }
	m.putFan(r, p.Detail, r3.Vec{Y: -p.CylinderHeight / 2}, ring, false)
}

func (m Mesh) putMountCap(r Region, p Params) {
	top := p.MountTop()
	rad := p.MountOuterDiameter / 2
	ring := func(a float64) r3.Vec { return circlePoint(rad, top, a) }
	// The cap faces up, opposite to the bottom cap.
	m.putFan(r, p.Detail, r3.Vec{Y: top}, ring, true)
}

// Build derives p and generates the closed lampshade surface: the decorated shell,
// its bottom cap, the transition skirt up to the mount collar, and the collar with its top cap.
// Identical parameters always produce identical meshes. Detail below 1 yields an empty mesh.
func Build(p Params) Mesh {
	p = p.Derive()
	if p.Detail < 1 {
		return Mesh{}
	}
	m := newMesh(p.Detail)
	shell, bottomCap, transition, side, mountCap := m.Regions[0], m.Regions[1], m.Regions[2], m.Regions[3], m.Regions[4]
	for i := 0; i < p.Detail; i++ {
		m.putRow(shell, p, i, shellCell)
	}
	m.putBottomCap(bottomCap, p)
	for i := 0; i < p.Detail; i++ {
		m.putRow(transition, p, i, transitionCell)
	}
	m.putMountSide(side, p)
	m.putMountCap(mountCap, p)
	return m
}

// shellCell returns the corners of shell grid cell (i, j) in emission order
// (u1,v1), (u2,v1), (u2,v2), (u1,v2).
func shellCell(p Params, i, j int) [4]r3.Vec {
	d := p.Detail
	u1, u2 := float64(i)/float64(d), float64(i+1)/float64(d)
	v1, v2 := angleAt(j, d), angleAt(j+1, d)
	return [4]r3.Vec{
		OuterVertex(u1, v1, p),
		OuterVertex(u2, v1, p),
		OuterVertex(u2, v2, p),
		OuterVertex(u1, v2, p),
	}
}

// transitionCell returns the corners of skirt cell (i, j). The skirt is ruled between
// the decorated top rim of the shell and the plain collar circle: x and z blend with
// the same fraction t that sets the height.
func transitionCell(p Params, i, j int) [4]r3.Vec {
	d := p.Detail
	t1, t2 := float64(i)/float64(d), float64(i+1)/float64(d)
	lo := p.CylinderHeight / 2
	hi := lo + p.TransitionHeight
	y1, y2 := Mix(lo, hi, t1), Mix(lo, hi, t2)
	a1, a2 := angleAt(j, d), angleAt(j+1, d)
	r := p.MountOuterDiameter / 2

	rim1, rim2 := OuterVertex(0, a1, p), OuterVertex(0, a2, p)
	col1, col2 := circlePoint(r, hi, a1), circlePoint(r, hi, a2)
	blend := func(rim, col r3.Vec, t, y float64) r3.Vec {
		return r3.Vec{X: Mix(rim.X, col.X, t), Y: y, Z: Mix(rim.Z, col.Z, t)}
	}
	return [4]r3.Vec{
		blend(rim1, col1, t1, y1),
		blend(rim1, col1, t2, y2),
		blend(rim2, col2, t2, y2),
		blend(rim2, col2, t1, y1),
	}
}
