// SPDX-License-Identifier: MIT

// Package diagram lays out the gate lattice on a circle and renders it as SVG.
//
// Layout (NewScene) and drawing (Render) are separate: a Scene holds plain
// coordinates in abstract units, so it can be inspected and tested without
// parsing SVG.
//
// The scene contains:
//
//   - the letters on an outer ring, colored by category (mothers red,
//     doubles green, simples blue);
//   - one segment per gate;
//   - the ten Sefirot on an inner ring (purple);
//   - six labeled direction spokes from the center;
//   - optionally, the 72 three-letter names as rainbow paths letter to
//     letter. Names with a letter off the ring (final forms) are skipped.
//
// Positions are x = r·cos θ, y = r·sin θ with θ = start + i·360/n degrees;
// the default start of 90° puts the first letter at the top.
package diagram
