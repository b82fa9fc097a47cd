// Package calculator computes playlist timing: total length, projected end
// times and the surplus or deficit against a target end time.
package calculator

import (
	"math"
	"time"

	"github.com/osa030/playtime/internal/domain/song"
	"github.com/osa030/playtime/internal/domain/timecode"
)

// DefaultLayout is the short clock style used for end times.
const DefaultLayout = "3:04 PM"

// maxOffsetSeconds is the longest offset a time.Duration can hold.
const maxOffsetSeconds = int(math.MaxInt64 / int64(time.Second))

// Config represents calculator configuration.
type Config struct {
	Location *time.Location   // Wall clock location (default time.Local)
	Layout   string           // End time layout (default DefaultLayout)
	Now      func() time.Time // Clock (default time.Now)
}

// Calculator performs duration arithmetic over song lists.
// It keeps no state between calls beyond its configuration.
type Calculator struct {
	loc    *time.Location
	layout string
	now    func() time.Time
}

// TimeSettings holds the optional start and target end times.
type TimeSettings struct {
	StartTime     *time.Time
	TargetEndTime *time.Time
}

// Difference is the gap between the playlist length and the time left until the target.
type Difference struct {
	Seconds         int  // Absolute gap in seconds
	PlaylistTooLong bool // Playlist runs past the target
}

// Stats holds song counts.
type Stats struct {
	Total    int
	Selected int
}

// New creates a new Calculator.
func New(cfg Config) *Calculator {
	c := &Calculator{
		loc:    cfg.Location,
		layout: cfg.Layout,
		now:    cfg.Now,
	}
	if c.loc == nil {
		c.loc = time.Local
	}
	if c.layout == "" {
		c.layout = DefaultLayout
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Location returns the wall clock location.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// TotalDuration sums the durations of selected songs in seconds.
func (c *Calculator) TotalDuration(songs []song.Song) int {
	total := 0
	for _, s := range songs {
		if s.Selected {
			total += s.DurationInSeconds()
		}
	}
	return total
}

// FormattedTotalDuration returns TotalDuration rendered as a duration string.
func (c *Calculator) FormattedTotalDuration(songs []song.Song) string {
	return timecode.FromSeconds(c.TotalDuration(songs))
}

// EndTimeFromNow returns the clock time at which the playlist ends if started now.
func (c *Calculator) EndTimeFromNow(songs []song.Song) string {
	return c.EndTime(songs, c.now())
}

// EndTime returns the clock time at which the playlist ends if started at start.
// Crossing midnight is not indicated. Totals beyond what time.Duration holds are capped.
func (c *Calculator) EndTime(songs []song.Song, start time.Time) string {
	total := min(c.TotalDuration(songs), maxOffsetSeconds)
	end := start.Add(time.Duration(total) * time.Second)
	return end.In(c.loc).Format(c.layout)
}

// TimeUntilTarget returns the seconds from now until the next occurrence of
// target's time of day. A time of day at or before now means tomorrow.
func (c *Calculator) TimeUntilTarget(target time.Time) int {
	now := c.now().In(c.loc)
	next := c.onDate(now, target)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return int(next.Sub(now) / time.Second)
}

// TimeDifference compares the playlist length with the time left until target.
// A playlist that exactly fills the time is not too long.
func (c *Calculator) TimeDifference(songs []song.Song, target time.Time) Difference {
	total := c.TotalDuration(songs)
	until := c.TimeUntilTarget(target)

	diff := until - total
	if diff < 0 {
		diff = -diff
	}
	return Difference{
		Seconds:         diff,
		PlaylistTooLong: total > until,
	}
}

// AverageSongLength averages selected songs that have a valid duration.
func (c *Calculator) AverageSongLength(songs []song.Song) string {
	total, count := 0, 0
	for _, s := range songs {
		if s.Selected && s.HasValidDuration() {
			total += s.DurationInSeconds()
			count++
		}
	}
	if count == 0 {
		return timecode.Zero
	}
	return timecode.FromSeconds(total / count)
}

// SongCountStats counts all songs and selected songs.
func (c *Calculator) SongCountStats(songs []song.Song) Stats {
	stats := Stats{Total: len(songs)}
	for _, s := range songs {
		if s.Selected {
			stats.Selected++
		}
	}
	return stats
}

// HasValidSongs reports whether any selected song has a usable duration.
func (c *Calculator) HasValidSongs(songs []song.Song) bool {
	for _, s := range songs {
		if s.Selected && s.HasValidDuration() {
			return true
		}
	}
	return false
}

// onDate places the clock reading of t on the calendar day of day.
func (c *Calculator) onDate(day, t time.Time) time.Time {
	y, m, d := day.Date()
	h, mi, s := t.Clock()
	return time.Date(y, m, d, h, mi, s, 0, c.loc)
}
