package d3

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is three vertex positions.
type Triangle [3]r3.Vec

// Normal returns the unit normal given by the right hand rule over the vertex order.
// It returns the zero vector for a degenerate triangle.
func (t Triangle) Normal() r3.Vec {
	n := t.cross()
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// Area returns the area of the triangle.
func (t Triangle) Area() float64 {
	return r3.Norm(t.cross()) / 2
}

// Degenerate returns true if the triangle area is at most tol.
func (t Triangle) Degenerate(tol float64) bool {
	return t.Area() <= tol
}

func (t Triangle) cross() r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}
