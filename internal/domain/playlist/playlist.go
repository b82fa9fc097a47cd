// Package playlist provides the Playlist domain entity.
//
// Playlist is the mutation boundary for an embedding UI: adding, removing,
// editing and toggling songs go through it so the list is never empty and
// typed durations are normalized. The CLI only replaces the whole list.
package playlist

import (
	"github.com/osa030/playtime/internal/domain/song"
	"github.com/osa030/playtime/internal/domain/timecode"
)

// Playlist is the caller-owned, mutable list of songs being timed.
// It never holds zero songs.
type Playlist struct {
	songs []song.Song
}

// Patch describes a partial edit of a song. Nil fields are left untouched.
type Patch struct {
	Name     *string
	Artist   *string
	Duration *string
	Selected *bool
}

// New creates a playlist holding a single empty song.
func New() *Playlist {
	return &Playlist{songs: []song.Song{song.Empty()}}
}

// Songs returns a copy of the songs in order.
func (p *Playlist) Songs() []song.Song {
	out := make([]song.Song, len(p.songs))
	copy(out, p.songs)
	return out
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.songs)
}

// SongIDs returns all song IDs in the playlist.
func (p *Playlist) SongIDs() []string {
	ids := make([]string, len(p.songs))
	for i, s := range p.songs {
		ids[i] = s.ID
	}
	return ids
}

// Find returns the song with the given ID.
func (p *Playlist) Find(id string) (song.Song, bool) {
	if i := p.indexOf(id); i >= 0 {
		return p.songs[i], true
	}
	return song.Song{}, false
}

// Add appends an empty song and returns it.
func (p *Playlist) Add() song.Song {
	s := song.Empty()
	p.songs = append(p.songs, s)
	return s
}

// Remove deletes the song with the given ID.
// Removing the last song leaves a fresh empty one in its place.
func (p *Playlist) Remove(id string) bool {
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.songs = append(p.songs[:i], p.songs[i+1:]...)

	if len(p.songs) == 0 {
		p.songs = append(p.songs, song.Empty())
	}
	return true
}

// Update applies a patch to the song with the given ID.
// Durations are normalized with timecode.FormatInput.
func (p *Playlist) Update(id string, patch Patch) bool {
	i := p.indexOf(id)
	if i < 0 {
		return false
	}

	s := &p.songs[i]
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Artist != nil {
		s.Artist = *patch.Artist
	}
	if patch.Duration != nil {
		s.Duration = timecode.FormatInput(*patch.Duration)
	}
	if patch.Selected != nil {
		s.Selected = *patch.Selected
	}
	return true
}

// Toggle flips the selection of the song with the given ID.
func (p *Playlist) Toggle(id string) bool {
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.songs[i].Selected = !p.songs[i].Selected
	return true
}

// Replace swaps the whole list, e.g. after an import.
// An empty list is rejected and the current songs are kept.
func (p *Playlist) Replace(songs []song.Song) bool {
	if len(songs) == 0 {
		return false
	}
	p.songs = make([]song.Song, len(songs))
	copy(p.songs, songs)
	return true
}

func (p *Playlist) indexOf(id string) int {
	for i, s := range p.songs {
		if s.ID == id {
			return i
		}
	}
	return -1
}
