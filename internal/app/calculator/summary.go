package calculator

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/osa030/playtime/internal/domain/song"
	"github.com/osa030/playtime/internal/domain/timecode"
)

// Summary collects every result shown for a playlist.
type Summary struct {
	TotalDuration    string
	TotalSeconds     int
	EndTimeFromNow   string
	EndTimeFromStart *string // nil without a start time
	Target           *TargetSummary
	AverageLength    string
	Stats            Stats
	HasValidSongs    bool
}

// TargetSummary holds the results that only exist when a target end time is set.
type TargetSummary struct {
	TimeUntil       string
	UntilSeconds    int
	Difference      string
	DiffSeconds     int
	PlaylistTooLong bool
}

// Summarize computes all results for songs under the given time settings.
func (c *Calculator) Summarize(songs []song.Song, settings TimeSettings) Summary {
	total := c.TotalDuration(songs)
	summary := Summary{
		TotalDuration:  timecode.FromSeconds(total),
		TotalSeconds:   total,
		EndTimeFromNow: c.EndTimeFromNow(songs),
		AverageLength:  c.AverageSongLength(songs),
		Stats:          c.SongCountStats(songs),
		HasValidSongs:  c.HasValidSongs(songs),
	}

	if settings.StartTime != nil {
		end := c.EndTime(songs, *settings.StartTime)
		summary.EndTimeFromStart = &end
	}

	if settings.TargetEndTime != nil {
		until := c.TimeUntilTarget(*settings.TargetEndTime)
		diff := c.TimeDifference(songs, *settings.TargetEndTime)
		summary.Target = &TargetSummary{
			TimeUntil:       timecode.FromSeconds(until),
			UntilSeconds:    until,
			Difference:      timecode.FromSeconds(diff.Seconds),
			DiffSeconds:     diff.Seconds,
			PlaylistTooLong: diff.PlaylistTooLong,
		}
	}

	return summary
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
}

// ParseClock reads a wall clock time such as "14:30", "2:30 PM" or an RFC3339
// timestamp. Times of day are placed on today's date in the calculator's location.
func (c *Calculator) ParseClock(text string) (time.Time, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return time.Time{}, errors.New("time is empty")
	}

	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.In(c.loc), nil
	}

	for _, layout := range clockLayouts {
		t, err := time.ParseInLocation(layout, text, c.loc)
		if err != nil {
			continue
		}
		return c.onDate(c.now().In(c.loc), t), nil
	}

	return time.Time{}, errors.Newf("unrecognized time %q (use HH:MM, H:MM PM or RFC3339)", text)
}
