package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/lampshade"
	"github.com/soypat/lampshade/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize = 84 // 80 byte comment and the facet count
	stlFacetSize  = 50 // normal, three vertices and an attribute count
	// facetsPerWrite bounds how many encoded facets are buffered before each Write.
	facetsPerWrite = 1 << 10
)

var (
	errEmptyMesh = errors.New("mesh has no triangles")
	errTooLarge  = errors.New("STL facet count overflows uint32")
)

// CreateSTL writes m to a binary STL file at path. Pass the output of Export
// so the file is Z-up and free of zero area facets.
func CreateSTL(path string, m lampshade.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeAndClose(f, m)
}

// writeAndClose writes m to wc and closes it, reporting the first error.
func writeAndClose(wc io.WriteCloser, m lampshade.Mesh) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteSTL(wc, m)
}

// WriteSTL writes the triangles of m to w in binary STL format, one facet per
// triangle in index order. Facet normals follow the right hand rule over the
// vertex order. Coordinates that do not fit a float32 are an error.
func WriteSTL(w io.Writer, m lampshade.Mesh) error {
	nt := m.NumTriangles()
	switch {
	case nt == 0:
		return errEmptyMesh
	case uint64(nt) > math.MaxUint32:
		return errTooLarge
	}
	var header [stlHeaderSize]byte
	binary.LittleEndian.PutUint32(header[80:], uint32(nt))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	buf := make([]byte, 0, stlFacetSize*facetsPerWrite)
	for i := range m.Triangles {
		tri := d3.Triangle(m.Triangle(i))
		var ok bool
		buf, ok = appendFacet(buf, tri)
		if !ok {
			return fmt.Errorf("triangle %d: coordinates out of float32 range", i)
		}
		if len(buf) == cap(buf) {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		_, err := w.Write(buf)
		return err
	}
	return nil
}

// appendFacet appends the STL encoding of t to b. ok is false if any
// coordinate is not finite once narrowed to float32.
func appendFacet(b []byte, t d3.Triangle) (_ []byte, ok bool) {
	ok = true
	put := func(v r3.Vec) {
		for _, c := range [3]float32{float32(v.X), float32(v.Y), float32(v.Z)} {
			if math32.IsNaN(c) || math32.IsInf(c, 0) {
				ok = false
			}
			b = binary.LittleEndian.AppendUint32(b, math32.Float32bits(c))
		}
	}
	put(t.Normal())
	put(t[0])
	put(t[1])
	put(t[2])
	b = binary.LittleEndian.AppendUint16(b, 0)
	return b, ok
}
