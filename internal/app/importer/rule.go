// Package importer turns pasted playlist text into song records.
package importer

import (
	"strings"

	"github.com/osa030/playtime/internal/domain/timecode"
)

// Extraction is what a rule pulled out of a single line.
type Extraction struct {
	Name     string
	Artist   string
	Duration string
}

// Empty reports whether nothing usable was found. Artist alone does not count.
func (e Extraction) Empty() bool {
	return e.Name == "" && e.Duration == ""
}

// Rule is one line format the importer understands.
type Rule interface {
	// Name returns the rule name.
	Name() string
	// Description returns a human-readable description.
	Description() string
	// Matches reports whether the line triggers this rule.
	Matches(line string) bool
	// Extract pulls fields out of a line that Matches accepted.
	Extract(line string) Extraction
}

// DelimitedRule handles comma separated lines: name, artist, ..., duration.
type DelimitedRule struct{}

func (r DelimitedRule) Name() string {
	return "delimited"
}

func (r DelimitedRule) Description() string {
	return "Comma separated fields (name, artist, duration)"
}

func (r DelimitedRule) Matches(line string) bool {
	return strings.Contains(line, ",")
}

func (r DelimitedRule) Extract(line string) Extraction {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(strings.TrimSpace(f), `"`, "")
	}

	// Fewer than three fields is not a usable row
	if len(fields) < 3 {
		return Extraction{}
	}
	return Extraction{
		Name:     fields[0],
		Artist:   fields[1],
		Duration: firstValidDuration(fields),
	}
}

// SeparatedRule handles tab separated lines and "name - artist" lines.
type SeparatedRule struct{}

func (r SeparatedRule) Name() string {
	return "separated"
}

func (r SeparatedRule) Description() string {
	return `Tab separated or " - " separated fields`
}

func (r SeparatedRule) Matches(line string) bool {
	return strings.Contains(line, "\t") || strings.Contains(line, " - ")
}

func (r SeparatedRule) Extract(line string) Extraction {
	sep := " - "
	if strings.Contains(line, "\t") {
		sep = "\t"
	}

	fields := strings.Split(line, sep)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	if len(fields) < 2 {
		return Extraction{}
	}
	return Extraction{
		Name:     fields[0],
		Artist:   fields[1],
		Duration: firstValidDuration(fields),
	}
}

// FreeformRule accepts any line and looks for a duration anywhere in it.
type FreeformRule struct{}

func (r FreeformRule) Name() string {
	return "freeform"
}

func (r FreeformRule) Description() string {
	return "Free text with an optional duration anywhere in the line"
}

func (r FreeformRule) Matches(line string) bool {
	return true
}

func (r FreeformRule) Extract(line string) Extraction {
	duration, ok := timecode.FindLoose(line)
	if !ok {
		return Extraction{Name: line}
	}
	return Extraction{
		Name:     strings.TrimSpace(strings.ReplaceAll(line, duration, "")),
		Duration: duration,
	}
}

// firstValidDuration returns the first field that is a strict duration, scanning in order.
func firstValidDuration(fields []string) string {
	for _, f := range fields {
		if timecode.IsValid(f) {
			return f
		}
	}
	return ""
}
