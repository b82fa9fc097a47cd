package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackToSong(t *testing.T) {
	tests := []struct {
		name     string
		track    Track
		duration string
	}{
		{name: "minutes", track: Track{Name: "Weightless", Artist: "Marconi Union", DurationMs: 485000}, duration: "8:05"},
		{name: "drops milliseconds", track: Track{Name: "Short", DurationMs: 1999}, duration: "0:01"},
		{name: "over an hour", track: Track{Name: "Long", DurationMs: 3723000}, duration: "1:02:03"},
		{name: "zero", track: Track{Name: "Silence"}, duration: "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TrackToSong(tt.track)
			assert.Equal(t, tt.track.Name, s.Name)
			assert.Equal(t, tt.track.Artist, s.Artist)
			assert.Equal(t, tt.duration, s.Duration)
			assert.True(t, s.Selected)
			assert.NotEmpty(t, s.ID)
		})
	}
}

func TestTracksToSongs(t *testing.T) {
	songs := TracksToSongs([]Track{
		{Name: "Eye of the Tiger", Artist: "Survivor", DurationMs: 246000},
		{Name: "Stronger", Artist: "Kelly Clarkson", DurationMs: 222000},
	})

	require.Len(t, songs, 2)
	assert.Equal(t, "Eye of the Tiger", songs[0].Name)
	assert.Equal(t, "4:06", songs[0].Duration)
	assert.Equal(t, "3:42", songs[1].Duration)
}
