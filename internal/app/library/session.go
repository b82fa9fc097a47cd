package library

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playtime/internal/domain/song"
)

// Messages resolves result codes to user-facing text.
type Messages interface {
	GetMessage(code string) string
}

// Result is the outcome of a library operation.
// Failures carry a code and a message and are never retried.
type Result struct {
	OK        bool
	Code      string
	Message   string
	Songs     []song.Song
	Playlists []PlaylistInfo
}

// Session tracks the authentication state against a single source.
// A session is request-scoped: callers create one per operation and drop it
// afterwards, so the authenticated state never outlives the caller.
type Session struct {
	source   Source
	messages Messages

	mu            sync.RWMutex
	authenticated bool
}

// NewSession creates a disconnected session.
func NewSession(source Source, messages Messages) *Session {
	return &Session{
		source:   source,
		messages: messages,
	}
}

// Authenticated reports whether the last Connect succeeded.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Connect authenticates with the source and lists its playlists.
func (s *Session) Connect(ctx context.Context, credential string) Result {
	if credential == "" {
		return s.fail("missing_credential", ErrMissingCredential)
	}

	if err := s.source.Authenticate(ctx, credential); err != nil {
		s.setAuthenticated(false)
		return s.fail(codeFor(err), err)
	}
	s.setAuthenticated(true)
	zlog.Info().Msgf("connected to %s library", s.source.Name())

	return s.Playlists(ctx)
}

// Playlists lists the playlists of the connected source.
func (s *Session) Playlists(ctx context.Context) Result {
	if !s.Authenticated() {
		return s.fail("not_authenticated", ErrNotAuthenticated)
	}

	playlists, err := s.source.ListPlaylists(ctx)
	if err != nil {
		return s.fail(codeFor(err), err)
	}
	return Result{
		OK:        true,
		Code:      "success",
		Message:   s.messages.GetMessage("success"),
		Playlists: playlists,
	}
}

// ImportPlaylist fetches a playlist and converts its tracks to songs.
// An empty playlist is a failure so callers keep their current songs.
func (s *Session) ImportPlaylist(ctx context.Context, playlistID string) Result {
	if !s.Authenticated() {
		return s.fail("not_authenticated", ErrNotAuthenticated)
	}

	tracks, err := s.source.GetTracks(ctx, playlistID)
	if err != nil {
		return s.fail(codeFor(err), err)
	}
	if len(tracks) == 0 {
		return s.fail("empty_playlist", errors.Newf("playlist %s has no tracks", playlistID))
	}

	zlog.Info().Msgf("imported playlist: id=%s tracks=%d", playlistID, len(tracks))
	return Result{
		OK:      true,
		Code:    "success",
		Message: s.messages.GetMessage("success"),
		Songs:   TracksToSongs(tracks),
	}
}

func (s *Session) setAuthenticated(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = v
}

func (s *Session) fail(code string, err error) Result {
	zlog.Warn().Err(err).Msgf("library operation failed: code=%s", code)
	return Result{
		OK:      false,
		Code:    code,
		Message: s.messages.GetMessage(code),
	}
}

// codeFor maps source errors to message codes.
func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrAuthenticationFailed):
		return "authentication_failed"
	case errors.Is(err, ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, ErrPlaylistNotFound):
		return "playlist_not_found"
	default:
		return "default_error"
	}
}
