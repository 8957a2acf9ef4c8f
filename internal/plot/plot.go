// Package plot renders fuzzy inference traces with gonum/plot: every output
// term's membership curve, the clipped-and-aggregated membership and the
// defuzzified output.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/fuzzyrel/fuzzy"
)

// ErrEmptyTrace indicates an inference without universe samples.
var ErrEmptyTrace = errors.New("plot: inference has no samples")

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Option configures a rendering.
type Option func(*Options)

// Options holds the tunables of a rendering.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns a titled 6×4 inch canvas.
func DefaultOptions() Options {
	return Options{Title: "Heating level", Width: DefaultWidth, Height: DefaultHeight}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithSize sets the canvas size; non-positive values keep the default.
func WithSize(w, h vg.Length) Option {
	return func(o *Options) {
		if w > 0 {
			o.Width = w
		}
		if h > 0 {
			o.Height = h
		}
	}
}

// Inference builds the plot of inf over the output terms.
//
// Layers, bottom to top: one dashed curve per term (sorted by ID), the
// aggregate as a thick line, and a cross at (Output, Peak).
func Inference(inf *fuzzy.Inference, terms fuzzy.Terms, opts ...Option) (*plot.Plot, error) {
	if inf == nil || len(inf.Universe) == 0 {
		return nil, ErrEmptyTrace
	}
	if len(inf.Aggregate) != len(inf.Universe) {
		return nil, fmt.Errorf("plot: %d aggregate values for %d samples", len(inf.Aggregate), len(inf.Universe))
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "output"
	p.Y.Label.Text = "membership"
	p.Legend.Top = true

	for i, id := range terms.IDs() {
		line, err := plotter.NewLine(curve(inf.Universe, func(x float64) float64 {
			return fuzzy.Membership(x, terms[id])
		}))
		if err != nil {
			return nil, fmt.Errorf("plot: term %q: %w", id, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Dashes = plotutil.Dashes(1)
		p.Add(line)
		p.Legend.Add(id, line)
	}

	aggXY := make(plotter.XYs, len(inf.Universe))
	for i, x := range inf.Universe {
		aggXY[i].X, aggXY[i].Y = x, inf.Aggregate[i]
	}
	agg, err := plotter.NewLine(aggXY)
	if err != nil {
		return nil, fmt.Errorf("plot: aggregate: %w", err)
	}
	agg.LineStyle.Width = vg.Points(2)
	p.Add(agg)
	p.Legend.Add("aggregate", agg)

	out, err := plotter.NewScatter(plotter.XYs{{X: inf.Output, Y: inf.Peak}})
	if err != nil {
		return nil, fmt.Errorf("plot: output: %w", err)
	}
	out.GlyphStyle.Shape = draw.CrossGlyph{}
	out.GlyphStyle.Radius = vg.Points(5)
	p.Add(out)
	p.Legend.Add(fmt.Sprintf("output %.4g", inf.Output), out)

	p.Y.Min = 0
	p.Y.Max = math.Max(1, floats.Max(inf.Aggregate))

	return p, nil
}

// Save renders inf to path; the format follows the file extension
// (png, svg, pdf, ...).
func Save(path string, inf *fuzzy.Inference, terms fuzzy.Terms, opts ...Option) error {
	p, err := Inference(inf, terms, opts...)
	if err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return p.Save(o.Width, o.Height, path)
}

// Write renders inf to w in the given format ("png", "svg", ...).
func Write(w io.Writer, format string, inf *fuzzy.Inference, terms fuzzy.Terms, opts ...Option) error {
	p, err := Inference(inf, terms, opts...)
	if err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	wt, err := p.WriterTo(o.Width, o.Height, strings.TrimPrefix(strings.ToLower(format), "."))
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// FormatOf returns the image format implied by path's extension.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// curve samples f over xs.
func curve(xs []float64, f func(float64) float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i].X = x
		pts[i].Y = f(x)
	}

	return pts
}
