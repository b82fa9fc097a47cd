// Package song provides the Song domain entity.
package song

import (
	"github.com/google/uuid"

	"github.com/osa030/playtime/internal/domain/timecode"
)

// Song represents a playlist entry entered by the user or produced by an import.
// Duration holds the raw text as typed; it is not validated on construction.
type Song struct {
	ID       string // Identity used when editing or removing songs
	Name     string // Song name (may be empty)
	Artist   string // Artist name (may be empty)
	Duration string // "M:SS" or "H:MM:SS", unvalidated
	Selected bool   // Included in aggregate calculations
}

// New creates a selected song with a fresh ID.
func New(name, artist, duration string) Song {
	return Song{
		ID:       uuid.NewString(),
		Name:     name,
		Artist:   artist,
		Duration: duration,
		Selected: true,
	}
}

// Empty creates a blank selected song.
func Empty() Song {
	return New("", "", "")
}

// DurationInSeconds returns the parsed duration; unparseable text yields 0.
func (s Song) DurationInSeconds() int {
	return timecode.ParseToSeconds(s.Duration)
}

// HasValidDuration reports whether the duration is non-empty and parses to a positive length.
func (s Song) HasValidDuration() bool {
	return s.Duration != "" && s.DurationInSeconds() > 0
}
