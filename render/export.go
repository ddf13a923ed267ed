package render

import (
	"github.com/soypat/lampshade"
	"github.com/soypat/lampshade/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateArea is the largest triangle area, in mm², Export treats as zero.
const degenerateArea = 1e-12

// Export prepares a mesh for a Z-up triangle file: coordinates are remapped from
// (x, y, z) to (x, z, y), zero area and non-finite triangles are dropped, vertices no triangle
// references are removed and the mesh is translated so its bounding box starts at
// the origin. Vertex and triangle order is otherwise preserved. m is not modified.
//
// The returned mesh carries no regions since filtering breaks the spans.
func Export(m lampshade.Mesh) lampshade.Mesh {
	if len(m.Triangles) == 0 {
		return lampshade.Mesh{}
	}
	verts := make(d3.Set, len(m.Vertices))
	copy(verts, m.Vertices)
	d3.SwapYZ().Apply(verts)

	used := make([]bool, len(verts))
	tris := make([][3]int, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		tri := d3.Triangle([3]r3.Vec{verts[t[0]], verts[t[1]], verts[t[2]]})
		if !d3.IsFinite(tri[0]) || !d3.IsFinite(tri[1]) || !d3.IsFinite(tri[2]) || tri.Degenerate(degenerateArea) {
			continue
		}
		tris = append(tris, t)
		used[t[0]], used[t[1]], used[t[2]] = true, true, true
	}
	if len(tris) == 0 {
		return lampshade.Mesh{}
	}

	// Compact vertices keeping their relative order.
	remap := make([]int, len(verts))
	kept := verts[:0]
	for i, v := range verts {
		if !used[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, v)
	}
	for i, t := range tris {
		tris[i] = [3]int{remap[t[0]], remap[t[1]], remap[t[2]]}
	}

	rezero := d3.Transform{}.Translate(r3.Scale(-1, kept.Min()))
	rezero.Apply(kept)
	return lampshade.Mesh{Vertices: kept, Triangles: tris}
}
