package importer

import (
	"fmt"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playtime/internal/domain/song"
)

const (
	// DefaultSongPrefix names songs that have no recognizable title.
	DefaultSongPrefix = "Song"
	// DefaultUnknownArtist fills in a missing artist.
	DefaultUnknownArtist = "Unknown Artist"
)

// Record is a parsed line ready to become a Song.
type Record struct {
	Name     string
	Artist   string
	Duration string
}

// ToSong converts the record to a selected song.
func (r Record) ToSong() song.Song {
	return song.New(r.Name, r.Artist, r.Duration)
}

// ToSongs converts records to selected songs, preserving order.
func ToSongs(records []Record) []song.Song {
	songs := make([]song.Song, len(records))
	for i, r := range records {
		songs[i] = r.ToSong()
	}
	return songs
}

// Config represents importer configuration.
type Config struct {
	SongPrefix    string // Placeholder name prefix, numbered by line
	UnknownArtist string // Placeholder artist
}

// Importer parses pasted playlist text. It never fails: unusable lines are dropped.
type Importer struct {
	chain         *Chain
	songPrefix    string
	unknownArtist string
}

// New creates an importer using the default rule chain.
func New(cfg Config) *Importer {
	return NewWithChain(DefaultChain(), cfg)
}

// NewWithChain creates an importer with a custom rule chain.
func NewWithChain(chain *Chain, cfg Config) *Importer {
	if cfg.SongPrefix == "" {
		cfg.SongPrefix = DefaultSongPrefix
	}
	if cfg.UnknownArtist == "" {
		cfg.UnknownArtist = DefaultUnknownArtist
	}
	return &Importer{
		chain:         chain,
		songPrefix:    cfg.SongPrefix,
		unknownArtist: cfg.UnknownArtist,
	}
}

// Report is the outcome of parsing a block of text.
type Report struct {
	Records []Record
	Lines   int // Non-blank lines seen
	Dropped int // Lines that produced no record
}

// Parse parses raw text into records in input order.
// Blank lines are skipped and do not count toward placeholder numbering.
// An empty result means there was nothing to import.
func (im *Importer) Parse(raw string) []Record {
	return im.ParseReport(raw).Records
}

// ParseReport parses raw text like Parse and also counts dropped lines.
func (im *Importer) ParseReport(raw string) Report {
	lines := splitLines(raw)
	report := Report{
		Records: make([]Record, 0, len(lines)),
		Lines:   len(lines),
	}

	for i, line := range lines {
		ext, rule := im.chain.Apply(line)
		if ext.Empty() {
			zlog.Debug().Msgf("import: dropped line %d (rule=%s): %q", i+1, rule, line)
			report.Dropped++
			continue
		}

		rec := Record{
			Name:     ext.Name,
			Artist:   ext.Artist,
			Duration: ext.Duration,
		}
		if rec.Name == "" {
			rec.Name = fmt.Sprintf("%s %d", im.songPrefix, i+1)
		}
		if rec.Artist == "" {
			rec.Artist = im.unknownArtist
		}
		zlog.Debug().Msgf("import: line %d (rule=%s): name=%q artist=%q duration=%q", i+1, rule, rec.Name, rec.Artist, rec.Duration)
		report.Records = append(report.Records, rec)
	}

	return report
}

// Parse parses raw text with the default importer.
func Parse(raw string) []Record {
	return New(Config{}).Parse(raw)
}

// splitLines splits on any newline and returns the trimmed, non-blank lines.
func splitLines(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
			return true
		}
		return false
	})

	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}
