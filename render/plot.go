package render

import (
	"io"

	"github.com/soypat/lampshade"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// profileSamples is the number of segments each profile curve is drawn with.
const profileSamples = 100

// ProfilePlot returns a chart of the shell silhouette, radius against height, for
// every interpolation mode. The mode selected in p is drawn thicker and the
// decorated radius along azimuth zero is drawn dashed.
func ProfilePlot(p lampshade.Params) (*plot.Plot, error) {
	p = p.Derive()
	plt := plot.New()
	plt.Title.Text = "Lampshade profile"
	plt.X.Label.Text = "radius (mm)"
	plt.Y.Label.Text = "height (mm)"
	plt.Add(plotter.NewGrid())

	modes := []lampshade.Interpolation{lampshade.Bezier, lampshade.Lagrange, lampshade.Linear}
	for i, mode := range modes {
		q := p
		q.Interpolation = mode
		line, err := plotter.NewLine(profileXYs(q, func(u float64) float64 { return lampshade.Profile(u, q) }))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		if mode == p.Interpolation {
			line.Width = vg.Points(2)
		}
		plt.Add(line)
		plt.Legend.Add(mode.String(), line)
	}
	if p.Pattern != lampshade.PatternNone {
		decorated, err := plotter.NewLine(profileXYs(p, func(u float64) float64 {
			return lampshade.OuterVertex(u, 0, p).X
		}))
		if err != nil {
			return nil, err
		}
		decorated.Dashes = plotutil.Dashes(1)
		plt.Add(decorated)
		plt.Legend.Add(p.Pattern.String(), decorated)
	}
	return plt, nil
}

func profileXYs(p lampshade.Params, radius func(u float64) float64) plotter.XYs {
	pts := make(plotter.XYs, profileSamples+1)
	for k := range pts {
		u := float64(k) / profileSamples
		pts[k].X = radius(u)
		pts[k].Y = lampshade.Mix(p.CylinderHeight/2, -p.CylinderHeight/2, u)
	}
	return pts
}

// WriteProfilePlot writes ProfilePlot(p) as a PNG image of the given size.
func WriteProfilePlot(w io.Writer, p lampshade.Params, width, height vg.Length) error {
	plt, err := ProfilePlot(p)
	if err != nil {
		return err
	}
	wt, err := plt.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
