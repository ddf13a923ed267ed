package render

import (
	"errors"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/lampshade"
	"gonum.org/v1/gonum/spatial/r3"
)

// PreviewConfig controls the shaded preview image.
type PreviewConfig struct {
	Width, Height int
	// Supersample renders at this multiple of the output size and downsamples for antialiasing.
	Supersample int
	// Eye is the camera position after the mesh is fit into a bi-unit cube. Y is up.
	Eye r3.Vec
	// Fovy is the vertical field of view in degrees.
	Fovy       float64
	Color      string
	Background string
}

// DefaultPreviewConfig returns an isometric view sized to 40% of Full HD.
func DefaultPreviewConfig() PreviewConfig {
	const fhdScaler = 0.4
	return PreviewConfig{
		Width:       int(1920. * fhdScaler),
		Height:      int(1080. * fhdScaler),
		Supersample: 2,
		Eye:         r3.Vec{X: 2.4, Y: 1.6, Z: 2.4},
		Fovy:        30,
		Color:       "#468966",
		Background:  "#FFF8E3",
	}
}

var errNoGeometry = errors.New("mesh has no triangles to render")

// WritePreviewPNG renders m with Phong shading and smoothed normals and writes it as PNG.
// m must be the Y-up mesh Build returns. Export's Z-up output would be drawn on its side.
func WritePreviewPNG(w io.Writer, m lampshade.Mesh, cfg PreviewConfig) error {
	if m.NumTriangles() == 0 {
		return errNoGeometry
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("preview size must be positive")
	}
	scale := cfg.Supersample
	if scale < 1 {
		scale = 1
	}
	tris := make([]*fauxgl.Triangle, 0, m.NumTriangles())
	for i := 0; i < m.NumTriangles(); i++ {
		t := m.Triangle(i)
		tris = append(tris, fauxgl.NewTriangleForPoints(fv(t[0]), fv(t[1]), fv(t[2])))
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	mesh.SmoothNormals()

	var (
		eye    = fv(cfg.Eye)
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(0, 1, 0)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		near   = 1.
		far    = 10.
	)
	context := fauxgl.NewContext(cfg.Width*scale, cfg.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(cfg.Background))
	aspect := float64(cfg.Width) / float64(cfg.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(cfg.Fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(cfg.Color)
	context.Shader = shader
	context.DrawMesh(mesh)

	image := context.Image()
	if scale > 1 {
		image = resize.Resize(uint(cfg.Width), uint(cfg.Height), image, resize.Bilinear)
	}
	return png.Encode(w, image)
}

func fv(v r3.Vec) fauxgl.Vector { return fauxgl.V(v.X, v.Y, v.Z) }
