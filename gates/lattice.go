// SPDX-License-Identifier: MIT
// Package: gematria/gates
//
// lattice.go: Lattice: letters as nodes, gates as edges.
//
// Determinism:
//   • Nodes() is alphabet order; Gates() is emission order.
//   • Neighbors(r) is alphabet order.
//
// Concurrency:
//   • Mutations (during Build only) take mu for writing; queries take it for reading.
//
// Policy:
//   • No self gates (ErrSelfGate), no parallel gates (ErrDuplicateGate).
//   • Unordered lattices index both directions of a gate; ordered ones only a→b.

package gates

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/katalvlaran/gematria/aggregate"
	"github.com/katalvlaran/gematria/alphabet"
)

// gateIDPrefix yields stable IDs "g1", "g2", ...
const gateIDPrefix = "g"

// Gate is one pairing of two distinct letters with its derived metrics.
type Gate struct {
	// Index is the 1-based emission position.
	Index int

	// ID is "g"+Index.
	ID string

	// A and B are the paired symbols; A precedes B in unordered lattices.
	A, B alphabet.Symbol

	// ValueSum is A.Value + B.Value.
	ValueSum int

	// NameValueA and NameValueB are the gematria of the spelled-out names.
	NameValueA, NameValueB int

	// NameRatio is NameValueA / NameValueB.
	NameRatio aggregate.Quotient

	// NameDifference is NameValueA − NameValueB.
	NameDifference int
}

// Lattice holds the letters and the gates between them.
type Lattice struct {
	mu sync.RWMutex

	table   *alphabet.Table
	ordered bool

	nodes []rune
	index map[rune]int

	gates []*Gate
	// adjacency[from][to] = position in gates
	adjacency map[rune]map[rune]int
}

func newLattice(table *alphabet.Table, ordered bool, capacity int) *Lattice {
	return &Lattice{
		table:     table,
		ordered:   ordered,
		index:     make(map[rune]int),
		gates:     make([]*Gate, 0, capacity),
		adjacency: make(map[rune]map[rune]int),
	}
}

// addNode registers r if missing (idempotent).
func (l *Lattice) addNode(r rune) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.index[r]; exists {
		return
	}
	l.index[r] = len(l.nodes)
	l.nodes = append(l.nodes, r)
	l.adjacency[r] = make(map[rune]int)
}

// addGate appends g, assigning Index and ID, and links adjacency.
func (l *Lattice) addGate(g *Gate) error {
	a, b := g.A.Rune, g.B.Rune
	if a == b {
		return fmt.Errorf("addGate(%q,%q): %w", a, b, ErrSelfGate)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.adjacency[a]; !ok {
		return fmt.Errorf("addGate(%q,%q): %q: %w", a, b, a, ErrUnknownLetter)
	}
	if _, ok := l.adjacency[b]; !ok {
		return fmt.Errorf("addGate(%q,%q): %q: %w", a, b, b, ErrUnknownLetter)
	}
	if _, dup := l.adjacency[a][b]; dup {
		return fmt.Errorf("addGate(%q,%q): %w", a, b, ErrDuplicateGate)
	}

	pos := len(l.gates)
	g.Index = pos + 1
	g.ID = gateIDPrefix + strconv.Itoa(g.Index)
	l.gates = append(l.gates, g)

	l.adjacency[a][b] = pos
	if !l.ordered {
		l.adjacency[b][a] = pos
	}
	return nil
}

// Table returns the table the lattice was built from.
func (l *Lattice) Table() *alphabet.Table { return l.table }

// Ordered reports whether gates are ordered pairs.
func (l *Lattice) Ordered() bool { return l.ordered }

// Len returns the number of gates.
func (l *Lattice) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.gates)
}

// Nodes returns the letters in alphabet order.
func (l *Lattice) Nodes() []rune {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]rune, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Gates returns copies of all gates in emission order.
func (l *Lattice) Gates() []Gate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Gate, len(l.gates))
	for i, g := range l.gates {
		out[i] = *g
	}
	return out
}

// Gate returns the gate a→b. Unordered lattices accept either order.
func (l *Lattice) Gate(a, b rune) (Gate, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	pos, ok := l.adjacency[a][b]
	if !ok {
		return Gate{}, false
	}
	return *l.gates[pos], true
}

// Has reports whether the gate a→b exists.
func (l *Lattice) Has(a, b rune) bool {
	_, ok := l.Gate(a, b)
	return ok
}

// Degree returns the number of gates leaving r (every gate touching r when
// unordered).
func (l *Lattice) Degree(r rune) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.adjacency[r])
}

// Neighbors returns the letters r is gated to, in alphabet order.
func (l *Lattice) Neighbors(r rune) []rune {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]rune, 0, len(l.adjacency[r]))
	for n := range l.adjacency[r] {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return l.index[out[i]] < l.index[out[j]] })
	return out
}

// Incident returns the gates touching r in emission order.
func (l *Lattice) Incident(r rune) []Gate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Gate
	for _, g := range l.gates {
		if g.A.Rune == r || g.B.Rune == r {
			out = append(out, *g)
		}
	}
	return out
}
