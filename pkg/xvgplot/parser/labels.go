package parser

import (
	"regexp"
	"slices"
	"strings"
)

// LabelKind identifies which record field a directive line sets.
type LabelKind int

const (
	// LabelNone means the directive carries nothing we extract.
	LabelNone LabelKind = iota
	// LabelXAxis is an "@ xaxis label" line.
	LabelXAxis
	// LabelYAxis is an "@ yaxis label" line.
	LabelYAxis
	// LabelLegend is an "@ s0 legend" line.
	LabelLegend
)

// String returns the tag name as written in xvg headers.
func (k LabelKind) String() string {
	switch k {
	case LabelXAxis:
		return "xaxis"
	case LabelYAxis:
		return "yaxis"
	case LabelLegend:
		return "legend"
	}
	return "none"
}

// Label is the result of extracting a directive line.
type Label struct {
	Kind LabelKind
	Text string
}

var quotedRe = regexp.MustCompile(`"([^"]*)"`)

// ExtractLabel parses a directive line (one starting with '@').
// Only axis labels and the legend of data set s0 are recognized; every other
// directive yields LabelNone. A recognized tag without a double-quoted value
// returns ErrMalformedHeaderLabel.
func ExtractLabel(line string) (Label, error) {
	kind := labelKind(directiveTokens(line))
	if kind == LabelNone {
		return Label{}, nil
	}

	m := quotedRe.FindStringSubmatch(line)
	if m == nil {
		return Label{Kind: kind}, ErrMalformedHeaderLabel
	}
	return Label{Kind: kind, Text: m[1]}, nil
}

// directiveTokens splits the text between '@' and the first quote.
// Words inside the quoted value never act as tags.
func directiveTokens(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "@")
	if idx := strings.IndexByte(s, '"'); idx >= 0 {
		s = s[:idx]
	}
	return strings.Fields(s)
}

func labelKind(tokens []string) LabelKind {
	has := func(tok string) bool { return slices.Contains(tokens, tok) }

	switch {
	case has("label") && has("yaxis"):
		return LabelYAxis
	case has("label") && has("xaxis"):
		return LabelXAxis
	case has("legend") && has("s0"):
		return LabelLegend
	}
	return LabelNone
}
