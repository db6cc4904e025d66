/*Package dgplot renders binding-energy trajectories to static image files:
the per-frame ΔGbind line, the running mean and a shaded dispersion band, for
one trajectory or for a whole comparison set. It is a non-interactive back
end; anything interactive belongs to whatever front end sits on top of the
library.*/
package dgplot

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gbsatools/dgtraj"
)

//Default single-trajectory colors: orange frames, dark-red running mean.
const (
	FrameColor = "#FFA500"
	MeanColor  = "#8B0000"
)

//bandAlpha is the opacity of the shaded dispersion envelope.
const bandAlpha uint8 = 76

//HexColor converts a #RRGGBB string into an RGBA color with the given alpha.
func HexColor(s string, alpha uint8) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("dgplot: Bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("dgplot: Bad hex color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: alpha}, nil
}

//dashes translates a comparison line style into a vg dash pattern.
func dashes(s dgtraj.LineStyle) []vg.Length {
	switch s {
	case dgtraj.Dashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case dgtraj.Dotted:
		return []vg.Length{vg.Points(1.5), vg.Points(3)}
	case dgtraj.DashDot:
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1.5), vg.Points(3)}
	}
	return nil //solid
}

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Time (ns)"
	p.Y.Label.Text = "ΔGbind (kcal/mol)"
	p.Add(plotter.NewGrid())
	return p
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

//bandPolygon builds the shaded envelope mean±mag as a closed polygon: the
//upper edge left to right, then the lower edge back.
func bandPolygon(x, mean, mag []float64, col color.NRGBA) (*plotter.Polygon, error) {
	pts := make(plotter.XYs, 0, 2*len(x))
	for i := range x {
		pts = append(pts, plotter.XY{X: x[i], Y: mean[i] + mag[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: x[i], Y: mean[i] - mag[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	col.A = bandAlpha
	poly.Color = col
	poly.LineStyle.Width = 0
	return poly, nil
}

//addSeries draws one analyzed trajectory on p: optionally the raw per-frame
//line, the shaded dispersion band, and the running mean on top of both.
func addSeries(p *plot.Plot, res *dgtraj.Result, frameCol, meanCol string, style dgtraj.LineStyle, showFrames bool) error {
	t := res.Time()
	mcol, err := HexColor(meanCol, 255)
	if err != nil {
		return err
	}
	if showFrames {
		fcol, err := HexColor(frameCol, 178)
		if err != nil {
			return err
		}
		frames, err := plotter.NewLine(xys(t, res.Traj.View()))
		if err != nil {
			return err
		}
		frames.LineStyle.Color = fcol
		frames.LineStyle.Width = vg.Points(1)
		p.Add(frames)
		p.Legend.Add("ΔGbind / frame", frames)
	}
	poly, err := bandPolygon(t, res.Mean.View(), res.Band.View(), mcol)
	if err != nil {
		return err
	}
	p.Add(poly)
	mean, err := plotter.NewLine(xys(t, res.Mean.View()))
	if err != nil {
		return err
	}
	mean.LineStyle.Color = mcol
	mean.LineStyle.Width = vg.Points(2)
	mean.LineStyle.Dashes = dashes(style)
	p.Add(mean)
	p.Legend.Add(fmt.Sprintf("%s (%d - running mean)", res.Traj.Label(), res.Mean.Window()), mean)
	return nil
}

//PlotTrajectory renders one analyzed trajectory to filename. The format is
//taken from the extension (png, pdf, svg...). An empty title gets the
//customary "ΔGbind vs Time" one.
func PlotTrajectory(res *dgtraj.Result, title, filename string) error {
	if title == "" {
		title = fmt.Sprintf("ΔGbind vs Time (ns) - %s", res.Traj.Label())
	}
	p := basicPlot(title)
	if err := addSeries(p, res, FrameColor, MeanColor, dgtraj.Solid, true); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

//PlotComparison renders every series of a comparison on shared axes, with
//the colors and line styles the comparison table assigned to them. Each
//series is analyzed with opts (nil means defaults). Raw per-frame lines are
//left out, as they make a multi-ligand plot unreadable.
func PlotComparison(C *dgtraj.Comparison, opts *dgtraj.Options, title, filename string) error {
	if title == "" {
		title = "ΔGbind Comparison"
	}
	p := basicPlot(title)
	for i, row := range C.Rows() {
		res, err := dgtraj.Analyze(C.Trajectory(i), opts)
		if err != nil {
			return err
		}
		if err := addSeries(p, res, row.Color, row.Color, row.Style, false); err != nil {
			return err
		}
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, filename)
}
