package connect

import (
	"context"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"

	"github.com/osa030/playtime/internal/app/library"
	"github.com/osa030/playtime/internal/infra/config"
	"github.com/osa030/playtime/internal/infra/metrics"
)

// LibraryService implements the LibraryService RPC.
// Each request authenticates on its own; no session outlives a call.
type LibraryService struct {
	source library.Source
	config *config.Config
}

// NewLibraryService creates a new LibraryService. source may be nil when no library is configured.
func NewLibraryService(source library.Source, cfg *config.Config) *LibraryService {
	return &LibraryService{
		source: source,
		config: cfg,
	}
}

// ListPlaylists authenticates and lists the library's playlists.
func (s *LibraryService) ListPlaylists(
	ctx context.Context,
	req *connect.Request[ListPlaylistsRequest],
) (*connect.Response[ListPlaylistsResponse], error) {
	session, err := s.session()
	if err != nil {
		return nil, err
	}

	result := session.Connect(ctx, req.Msg.Credential)

	playlists := make([]Playlist, len(result.Playlists))
	for i, p := range result.Playlists {
		playlists[i] = Playlist{ID: p.ID, Name: p.Name, TrackCount: p.TrackCount}
	}
	return connect.NewResponse(&ListPlaylistsResponse{
		Success:   result.OK,
		Code:      result.Code,
		Message:   result.Message,
		Playlists: playlists,
	}), nil
}

// ImportPlaylist authenticates and converts a library playlist to songs.
func (s *LibraryService) ImportPlaylist(
	ctx context.Context,
	req *connect.Request[ImportPlaylistRequest],
) (*connect.Response[ImportPlaylistResponse], error) {
	session, err := s.session()
	if err != nil {
		return nil, err
	}

	result := session.Connect(ctx, req.Msg.Credential)
	if result.OK {
		result = session.ImportPlaylist(ctx, req.Msg.PlaylistID)
	}
	metrics.LibraryImportsTotal.WithLabelValues(result.Code).Inc()

	return connect.NewResponse(&ImportPlaylistResponse{
		Success: result.OK,
		Code:    result.Code,
		Message: result.Message,
		Songs:   songsToMessages(result.Songs),
	}), nil
}

func (s *LibraryService) session() (*library.Session, error) {
	if s.source == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errors.New("no music library configured"))
	}
	return library.NewSession(s.source, s.config), nil
}
