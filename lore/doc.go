// SPDX-License-Identifier: MIT

// Package lore carries the fixed Sefer Yetzirah data that the calculators
// work against: the mother and double letter sets, planet/weekday and
// zodiac/month correspondences, the ten Sefirot, the six directions and the
// 72 three-letter names.
//
// The data is embedded (data/lore.yaml), parsed once on first use and
// exposed through an immutable *Lore. Accessors return copies.
//
// Example:
//
//	l := lore.Default()
//	for _, s := range l.Sefirot() {
//		fmt.Println(s.Index, s.Name, s.Hebrew)
//	}
package lore
