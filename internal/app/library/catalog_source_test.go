package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogSource_FromFile(t *testing.T) {
	src, err := NewCatalogSource(map[string]any{"path": "testdata/catalog.yaml"})
	require.NoError(t, err)

	ctx := context.Background()
	playlists, err := src.ListPlaylists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PlaylistInfo{
		{ID: "chill", Name: "Chill Vibes", TrackCount: 2},
		{ID: "focus", Name: "Focus Music", TrackCount: 1},
	}, playlists)

	tracks, err := src.GetTracks(ctx, "chill")
	require.NoError(t, err)
	assert.Equal(t, []Track{
		{Name: "Weightless", Artist: "Marconi Union", DurationMs: 485000},
		{Name: "Watermark", Artist: "Enya", DurationMs: 343000},
	}, tracks)
}

func TestNewCatalogSource_InlineSettings(t *testing.T) {
	settings := map[string]any{
		"credential": "inline-secret",
		"playlists": []any{
			map[string]any{
				"id":   "party",
				"name": "Party Favorites",
				"tracks": []any{
					map[string]any{"name": "Happy", "artist": "Pharrell Williams", "duration_ms": 232000},
				},
			},
		},
	}

	src, err := NewCatalogSource(settings)
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, src.Authenticate(ctx, "inline-secret"))
	assert.ErrorIs(t, src.Authenticate(ctx, "demo-client"), ErrAuthenticationFailed)

	tracks, err := src.GetTracks(ctx, "party")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, 232000, tracks[0].DurationMs)
}

func TestNewCatalogSource_Errors(t *testing.T) {
	badYAML := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("playlists: ["), 0644))

	missingID := filepath.Join(t.TempDir(), "missing-id.yaml")
	require.NoError(t, os.WriteFile(missingID, []byte("playlists:\n  - name: No ID\n"), 0644))

	tests := []struct {
		name     string
		settings map[string]any
		errMsg   string
	}{
		{name: "no path and no playlists", settings: map[string]any{}, errMsg: "validation failed"},
		{name: "missing file", settings: map[string]any{"path": "testdata/nope.yaml"}, errMsg: "failed to read catalog file"},
		{name: "malformed file", settings: map[string]any{"path": badYAML}, errMsg: "failed to parse catalog file"},
		{name: "playlist without id", settings: map[string]any{"path": missingID}, errMsg: "catalog validation failed"},
		{name: "wrong setting type", settings: map[string]any{"path": 42}, errMsg: "failed to decode settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogSource(tt.settings)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCatalogSource_Authenticate(t *testing.T) {
	src, err := NewCatalogSource(map[string]any{"path": "testdata/catalog.yaml"})
	require.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, src.Authenticate(ctx, "demo-client"))
	assert.ErrorIs(t, src.Authenticate(ctx, ""), ErrMissingCredential)
	assert.ErrorIs(t, src.Authenticate(ctx, "other"), ErrAuthenticationFailed)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, src.Authenticate(cancelled, "demo-client"), context.Canceled)
}

func TestCatalogSource_OpenCredential(t *testing.T) {
	src, err := NewCatalogSource(map[string]any{
		"playlists": []any{map[string]any{"id": "a", "name": "A"}},
	})
	require.NoError(t, err)

	assert.NoError(t, src.Authenticate(context.Background(), "anything"))
}

func TestCatalogSource_UnknownPlaylist(t *testing.T) {
	src, err := NewCatalogSource(map[string]any{"path": "testdata/catalog.yaml"})
	require.NoError(t, err)

	_, err = src.GetTracks(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlaylistNotFound))
	assert.Contains(t, err.Error(), "missing")
}
