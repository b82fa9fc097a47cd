package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/playtime/internal/domain/song"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNew_StartsWithOneEmptySong(t *testing.T) {
	p := New()

	require.Equal(t, 1, p.Len())
	s := p.Songs()[0]
	assert.Empty(t, s.Name)
	assert.Empty(t, s.Duration)
	assert.True(t, s.Selected)
}

func TestPlaylist_Add(t *testing.T) {
	p := New()
	added := p.Add()

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, added.ID, p.SongIDs()[1])
}

func TestPlaylist_Remove(t *testing.T) {
	tests := []struct {
		name    string
		songs   []song.Song
		remove  int
		wantLen int
	}{
		{
			name:    "remove one of several",
			songs:   []song.Song{song.New("A", "x", "3:00"), song.New("B", "y", "4:00")},
			remove:  0,
			wantLen: 1,
		},
		{
			name:    "remove last song leaves an empty one",
			songs:   []song.Song{song.New("A", "x", "3:00")},
			remove:  0,
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			require.True(t, p.Replace(tt.songs))

			removedID := tt.songs[tt.remove].ID
			assert.True(t, p.Remove(removedID))
			assert.Equal(t, tt.wantLen, p.Len())
			_, found := p.Find(removedID)
			assert.False(t, found)
		})
	}
}

func TestPlaylist_RemoveLastSongRepeatedly(t *testing.T) {
	p := New()
	for i := 0; i < 3; i++ {
		id := p.SongIDs()[0]
		assert.True(t, p.Remove(id))
		require.Equal(t, 1, p.Len())
		assert.NotEqual(t, id, p.SongIDs()[0])
		assert.Empty(t, p.Songs()[0].Name)
	}
}

func TestPlaylist_RemoveUnknown(t *testing.T) {
	p := New()
	assert.False(t, p.Remove("missing"))
	assert.Equal(t, 1, p.Len())
}

func TestPlaylist_Update(t *testing.T) {
	p := New()
	id := p.SongIDs()[0]

	ok := p.Update(id, Patch{
		Name:     ptr("Imagine"),
		Artist:   ptr("John Lennon"),
		Duration: ptr("03:03"),
	})
	require.True(t, ok)

	s, found := p.Find(id)
	require.True(t, found)
	assert.Equal(t, "Imagine", s.Name)
	assert.Equal(t, "John Lennon", s.Artist)
	assert.Equal(t, "3:03", s.Duration)
	assert.True(t, s.Selected)

	// invalid durations are stored verbatim
	p.Update(id, Patch{Duration: ptr("about 3 min")})
	s, _ = p.Find(id)
	assert.Equal(t, "about 3 min", s.Duration)

	p.Update(id, Patch{Selected: ptr(false)})
	s, _ = p.Find(id)
	assert.False(t, s.Selected)
	assert.Equal(t, "Imagine", s.Name)

	assert.False(t, p.Update("missing", Patch{Name: ptr("x")}))
}

func TestPlaylist_Toggle(t *testing.T) {
	p := New()
	id := p.SongIDs()[0]

	assert.True(t, p.Toggle(id))
	s, _ := p.Find(id)
	assert.False(t, s.Selected)

	assert.True(t, p.Toggle(id))
	s, _ = p.Find(id)
	assert.True(t, s.Selected)

	assert.False(t, p.Toggle("missing"))
}

func TestPlaylist_Replace(t *testing.T) {
	p := New()
	original := p.SongIDs()

	assert.False(t, p.Replace(nil))
	assert.Equal(t, original, p.SongIDs())

	songs := []song.Song{song.New("A", "x", "3:00"), song.New("B", "y", "4:00")}
	assert.True(t, p.Replace(songs))
	assert.Equal(t, []string{songs[0].ID, songs[1].ID}, p.SongIDs())

	// the playlist keeps its own copy
	songs[0].Name = "changed"
	assert.Equal(t, "A", p.Songs()[0].Name)
}

func TestPlaylist_SongsReturnsCopy(t *testing.T) {
	p := New()
	songs := p.Songs()
	songs[0].Name = "mutated"

	assert.Empty(t, p.Songs()[0].Name)
}
