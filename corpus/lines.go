// SPDX-License-Identifier: MIT
// Package: gematria/corpus
//
// lines.go: line-oriented interactive input.

package corpus

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultSentinel ends interactive input.
const DefaultSentinel = "END"

// ReadLines reads lines from r until a line equal to sentinel or EOF.
// The sentinel itself is not returned. Trailing "\r" is stripped.
func ReadLines(r io.Reader, sentinel string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if line == sentinel {
			return lines, nil
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return lines, fmt.Errorf("ReadLines: %w", err)
	}
	return lines, nil
}
