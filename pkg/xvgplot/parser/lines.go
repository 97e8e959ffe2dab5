// Package parser provides xvg file parsing utilities.
package parser

import "strings"

// LineKind classifies a single line of an xvg file.
type LineKind int

const (
	// LineBlank is empty or whitespace-only.
	LineBlank LineKind = iota
	// LineComment starts with '#'.
	LineComment
	// LineDirective starts with '@' and may carry a label.
	LineDirective
	// LineData is any other non-empty line.
	LineData
)

// IsHeader reports whether the kind is a metadata line.
func (k LineKind) IsHeader() bool {
	return k == LineComment || k == LineDirective
}

// ClassifyLine returns the kind of line based on its first non-space character.
func ClassifyLine(line string) LineKind {
	s := strings.TrimSpace(line)
	if s == "" {
		return LineBlank
	}
	switch s[0] {
	case '#':
		return LineComment
	case '@':
		return LineDirective
	}
	return LineData
}
