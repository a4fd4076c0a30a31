// SPDX-License-Identifier: MIT
// Package: gematria/report/diagram
//
// layout.go: circle positions and Scene construction.
//
// Contract:
//   • Positions is pure; n ≤ 0 yields nil.
//   • NewScene never panics; option constructors panic on non-positive sizes.
//   • Scene content order is deterministic (lattice and lore order).

package diagram

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gematria/classify"
	"github.com/katalvlaran/gematria/gates"
	"github.com/katalvlaran/gematria/lore"
)

// Defaults for NewScene.
const (
	DefaultRadius      = 8.0
	DefaultInnerRadius = 3.0
	DefaultStartAngle  = 90.0
	DefaultScale       = 30.0
)

// Category fills.
const (
	FillMother  = "red"
	FillDouble  = "green"
	FillSimple  = "blue"
	FillSefirah = "purple"
	FillOther   = "gray"
)

// ErrNilLattice is returned by NewScene for a nil lattice.
var ErrNilLattice = errors.New("diagram: lattice is nil")

// ErrNilLore is returned by NewScene for nil lore.
var ErrNilLore = errors.New("diagram: lore is nil")

// ErrNilScene is returned by Render for a nil scene.
var ErrNilScene = errors.New("diagram: scene is nil")

// Point is a position in scene units; y grows upward.
type Point struct {
	X, Y float64
}

// Node is a labeled dot.
type Node struct {
	Label string
	At    Point
	Fill  string
}

// Segment is a straight line.
type Segment struct {
	From, To Point
}

// Spoke is a labeled line from the center.
type Spoke struct {
	Label string
	To    Point
}

// Path is a labeled polyline.
type Path struct {
	Label  string
	Points []Point
	Stroke string
}

// Scene is everything Render draws.
type Scene struct {
	Radius   float64
	Scale    float64
	Letters  []Node
	Gates    []Segment
	Sefirot  []Node
	Spokes   []Spoke
	Triplets []Path
}

// Option customizes NewScene.
type Option func(*config)

type config struct {
	radius, inner, start, scale float64
	spoke                       float64
	triplets                    []string
}

// WithRadius sets the outer ring radius. Panics if r ≤ 0.
func WithRadius(r float64) Option {
	if r <= 0 {
		panic("diagram: WithRadius(r ≤ 0)")
	}
	return func(c *config) { c.radius = r }
}

// WithInnerRadius sets the Sefirot ring radius. Panics if r ≤ 0.
func WithInnerRadius(r float64) Option {
	if r <= 0 {
		panic("diagram: WithInnerRadius(r ≤ 0)")
	}
	return func(c *config) { c.inner = r }
}

// WithStartAngle sets the angle of the first position, in degrees.
func WithStartAngle(deg float64) Option {
	return func(c *config) { c.start = deg }
}

// WithSpokeLength overrides the lore's spoke length. Panics if l ≤ 0.
func WithSpokeLength(l float64) Option {
	if l <= 0 {
		panic("diagram: WithSpokeLength(l ≤ 0)")
	}
	return func(c *config) { c.spoke = l }
}

// WithScale sets pixels per scene unit. Panics if s ≤ 0.
func WithScale(s float64) Option {
	if s <= 0 {
		panic("diagram: WithScale(s ≤ 0)")
	}
	return func(c *config) { c.scale = s }
}

// WithTriplets adds one rainbow path per three-letter name.
func WithTriplets(ts []string) Option {
	cp := append([]string(nil), ts...)
	return func(c *config) { c.triplets = cp }
}

// Positions returns n points equally spaced on a circle of the given radius,
// the first at startDeg, counterclockwise.
func Positions(n int, radius, startDeg float64) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	step := 360.0 / float64(n)
	for i := range out {
		theta := (startDeg + float64(i)*step) * math.Pi / 180
		out[i] = Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	return out
}

// NewScene lays out l, colored by p, with the Sefirot and directions of lr.
func NewScene(l *gates.Lattice, p classify.Partition, lr *lore.Lore, opts ...Option) (*Scene, error) {
	if l == nil {
		return nil, fmt.Errorf("NewScene: %w", ErrNilLattice)
	}
	if lr == nil {
		return nil, fmt.Errorf("NewScene: %w", ErrNilLore)
	}

	cfg := config{
		radius: DefaultRadius,
		inner:  DefaultInnerRadius,
		start:  DefaultStartAngle,
		scale:  DefaultScale,
		spoke:  lr.SpokeLength(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Scene{Radius: cfg.radius, Scale: cfg.scale}

	nodes := l.Nodes()
	at := make(map[rune]Point, len(nodes))
	for i, pt := range Positions(len(nodes), cfg.radius, cfg.start) {
		r := nodes[i]
		at[r] = pt
		s.Letters = append(s.Letters, Node{Label: string(r), At: pt, Fill: fill(p, r)})
	}

	for _, g := range l.Gates() {
		s.Gates = append(s.Gates, Segment{From: at[g.A.Rune], To: at[g.B.Rune]})
	}

	sef := lr.Sefirot()
	for i, pt := range Positions(len(sef), cfg.inner, cfg.start) {
		s.Sefirot = append(s.Sefirot, Node{Label: sef[i].Hebrew, At: pt, Fill: FillSefirah})
	}

	for _, d := range lr.Directions() {
		s.Spokes = append(s.Spokes, Spoke{Label: d.Name, To: Point{X: d.DX * cfg.spoke, Y: d.DY * cfg.spoke}})
	}

	for i, t := range cfg.triplets {
		pts := make([]Point, 0, 3)
		for _, r := range t {
			pt, ok := at[r]
			if !ok {
				break
			}
			pts = append(pts, pt)
		}
		if len(pts) != len([]rune(t)) {
			continue
		}
		s.Triplets = append(s.Triplets, Path{Label: t, Points: pts, Stroke: Rainbow(i, len(cfg.triplets))})
	}

	return s, nil
}

func fill(p classify.Partition, r rune) string {
	c, ok := p.Category(r)
	if !ok {
		return FillOther
	}
	switch c {
	case classify.Mother:
		return FillMother
	case classify.Double:
		return FillDouble
	default:
		return FillSimple
	}
}

// Rainbow returns the i-th of n colors from violet (i=0) to red (i=n−1).
func Rainbow(i, n int) string {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	hue := int(math.Round(270 * (1 - t)))
	return fmt.Sprintf("hsl(%d,100%%,50%%)", hue)
}
