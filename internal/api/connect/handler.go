package connect

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/osa030/playtime/internal/infra/config"
)

// Register mounts both services on mux. The token interceptor guards only the
// library service.
func Register(mux *http.ServeMux, playlist *PlaylistService, lib *LibraryService, cfg *config.Config) {
	common := connect.WithInterceptors(NewMetricsInterceptor())
	guarded := connect.WithInterceptors(NewMetricsInterceptor(), NewTokenInterceptor(cfg))

	mux.Handle(CalculateProcedure, connect.NewUnaryHandler(CalculateProcedure, playlist.Calculate, WithJSON(), common))
	mux.Handle(ImportProcedure, connect.NewUnaryHandler(ImportProcedure, playlist.Import, WithJSON(), common))
	mux.Handle(FormatDurationProcedure, connect.NewUnaryHandler(FormatDurationProcedure, playlist.FormatDuration, WithJSON(), common))

	mux.Handle(ListPlaylistsProcedure, connect.NewUnaryHandler(ListPlaylistsProcedure, lib.ListPlaylists, WithJSON(), guarded))
	mux.Handle(ImportPlaylistProcedure, connect.NewUnaryHandler(ImportPlaylistProcedure, lib.ImportPlaylist, WithJSON(), guarded))
}
