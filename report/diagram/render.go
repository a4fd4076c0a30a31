// SPDX-License-Identifier: MIT
// Package: gematria/report/diagram
//
// render.go: SVG output via svgo.
//
// Draw order (back to front): gates, spokes, triplets, sefirot, letters.
// Each layer is a <g> with a stable id.

package diagram

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Layer ids.
const (
	LayerGates    = "gates"
	LayerSpokes   = "spokes"
	LayerTriplets = "triplets"
	LayerSefirot  = "sefirot"
	LayerLetters  = "letters"
)

const title = "Letters, gates, directions, Sefirot and triplets"

// errWriter keeps the first write error; svgo does not report any.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render writes s as a standalone SVG document.
func Render(w io.Writer, s *Scene) error {
	if s == nil {
		return fmt.Errorf("Render: %w", ErrNilScene)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	size := int(math.Ceil(2 * (s.Radius + 1) * s.Scale))
	half := float64(size) / 2
	px := func(p Point) (int, int) {
		return int(math.Round(half + p.X*s.Scale)), int(math.Round(half - p.Y*s.Scale))
	}
	cx, cy := px(Point{})

	canvas.Start(size, size)
	canvas.Title(title)
	canvas.Rect(0, 0, size, size, "fill:white")

	canvas.Gid(LayerGates)
	for _, g := range s.Gates {
		x1, y1 := px(g.From)
		x2, y2 := px(g.To)
		canvas.Line(x1, y1, x2, y2, "stroke:gray;stroke-width:0.5;stroke-opacity:0.3")
	}
	canvas.Gend()

	canvas.Gid(LayerSpokes)
	for _, sp := range s.Spokes {
		x, y := px(sp.To)
		canvas.Line(cx, cy, x, y, "stroke:black;stroke-width:1.5")
		canvas.Text(x, y, sp.Label, "font-size:11px;text-anchor:middle")
	}
	canvas.Gend()

	canvas.Gid(LayerTriplets)
	for _, t := range s.Triplets {
		xs := make([]int, len(t.Points))
		ys := make([]int, len(t.Points))
		for i, p := range t.Points {
			xs[i], ys[i] = px(p)
		}
		canvas.Polyline(xs, ys, "fill:none;stroke-width:2;stroke:"+t.Stroke)
	}
	canvas.Gend()

	dotRadius := int(math.Max(4, s.Scale/4))

	canvas.Gid(LayerSefirot)
	for _, n := range s.Sefirot {
		drawNode(canvas, px, n, dotRadius)
	}
	canvas.Gend()

	canvas.Gid(LayerLetters)
	for _, n := range s.Letters {
		drawNode(canvas, px, n, dotRadius+dotRadius/2)
	}
	canvas.Gend()

	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("Render: %w", ew.err)
	}
	return nil
}

func drawNode(canvas *svg.SVG, px func(Point) (int, int), n Node, r int) {
	x, y := px(n.At)
	canvas.Circle(x, y, r, "fill:"+n.Fill)
	canvas.Text(x, y, n.Label, "fill:white;font-size:12px;text-anchor:middle;dominant-baseline:central")
}
