// Package library connects to an external song library and converts its
// playlists into songs.
package library

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/osa030/playtime/internal/domain/song"
	"github.com/osa030/playtime/internal/domain/timecode"
)

var (
	// ErrMissingCredential is returned when no credential was supplied.
	ErrMissingCredential = errors.New("credential is required")
	// ErrAuthenticationFailed is returned when the source rejects the credential.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrNotAuthenticated is returned when an operation needs a connected session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrPlaylistNotFound is returned for unknown playlist IDs.
	ErrPlaylistNotFound = errors.New("playlist not found")
)

// Track is a track as reported by a library.
type Track struct {
	Name       string
	Artist     string
	DurationMs int
}

// PlaylistInfo describes a playlist without its tracks.
type PlaylistInfo struct {
	ID         string
	Name       string
	TrackCount int
}

// Source is the interface for song libraries.
type Source interface {
	// Name returns the source type (used in config).
	Name() string
	// Authenticate checks the credential against the library.
	Authenticate(ctx context.Context, credential string) error
	// ListPlaylists lists the playlists visible to the authenticated user.
	ListPlaylists(ctx context.Context) ([]PlaylistInfo, error)
	// GetTracks returns the tracks of a playlist in order.
	GetTracks(ctx context.Context, playlistID string) ([]Track, error)
}

// TrackToSong converts a library track to a selected song.
// Sub-second remainders are dropped.
func TrackToSong(t Track) song.Song {
	return song.New(t.Name, t.Artist, timecode.FromSeconds(t.DurationMs/1000))
}

// TracksToSongs converts tracks to songs, preserving order.
func TracksToSongs(tracks []Track) []song.Song {
	songs := make([]song.Song, len(tracks))
	for i, t := range tracks {
		songs[i] = TrackToSong(t)
	}
	return songs
}
