package library

import (
	"context"
	"crypto/subtle"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// CatalogConfig represents the settings of a CatalogSource.
type CatalogConfig struct {
	Path       string            `yaml:"path" mapstructure:"path" validate:"required_without=Playlists"`
	Credential string            `yaml:"credential" mapstructure:"credential"`
	Playlists  []CatalogPlaylist `yaml:"playlists" mapstructure:"playlists" validate:"dive"`
}

// CatalogPlaylist is a playlist entry of a catalog.
type CatalogPlaylist struct {
	ID     string         `yaml:"id" mapstructure:"id" validate:"required"`
	Name   string         `yaml:"name" mapstructure:"name" validate:"required"`
	Tracks []CatalogTrack `yaml:"tracks" mapstructure:"tracks" validate:"dive"`
}

// CatalogTrack is a track entry of a catalog.
type CatalogTrack struct {
	Name       string `yaml:"name" mapstructure:"name"`
	Artist     string `yaml:"artist" mapstructure:"artist"`
	DurationMs int    `yaml:"duration_ms" mapstructure:"duration_ms" validate:"gte=0"`
}

// catalogFile is the on-disk catalog layout.
type catalogFile struct {
	Credential string            `yaml:"credential"`
	Playlists  []CatalogPlaylist `yaml:"playlists" validate:"dive"`
}

// CatalogSource serves playlists from a local YAML catalog.
// An empty credential in the catalog accepts any non-empty credential.
type CatalogSource struct {
	credential string
	playlists  []CatalogPlaylist
}

// NewCatalogSource creates a CatalogSource from provider settings.
// Playlists given inline in settings are listed before those read from Path.
func NewCatalogSource(settings map[string]any) (*CatalogSource, error) {
	var config CatalogConfig
	if err := mapstructure.Decode(settings, &config); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&config); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	src := &CatalogSource{
		credential: config.Credential,
		playlists:  config.Playlists,
	}

	if config.Path != "" {
		file, err := readCatalogFile(config.Path)
		if err != nil {
			return nil, err
		}
		if src.credential == "" {
			src.credential = file.Credential
		}
		src.playlists = append(src.playlists, file.Playlists...)
	}

	zlog.Debug().Msgf("catalog source: path=%s playlists=%d", config.Path, len(src.playlists))
	return src, nil
}

func readCatalogFile(path string) (*catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog file")
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog file")
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, errors.Wrap(err, "catalog validation failed")
	}
	return &file, nil
}

// Name returns the source name.
func (c *CatalogSource) Name() string {
	return "catalog"
}

// Authenticate checks the credential against the catalog.
func (c *CatalogSource) Authenticate(ctx context.Context, credential string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if credential == "" {
		return ErrMissingCredential
	}
	if c.credential != "" && subtle.ConstantTimeCompare([]byte(credential), []byte(c.credential)) != 1 {
		return ErrAuthenticationFailed
	}
	return nil
}

// ListPlaylists lists catalog playlists in file order.
func (c *CatalogSource) ListPlaylists(ctx context.Context) ([]PlaylistInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos := make([]PlaylistInfo, len(c.playlists))
	for i, p := range c.playlists {
		infos[i] = PlaylistInfo{
			ID:         p.ID,
			Name:       p.Name,
			TrackCount: len(p.Tracks),
		}
	}
	return infos, nil
}

// GetTracks returns the tracks of the playlist with the given ID.
func (c *CatalogSource) GetTracks(ctx context.Context, playlistID string) ([]Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range c.playlists {
		if p.ID != playlistID {
			continue
		}
		tracks := make([]Track, len(p.Tracks))
		for i, t := range p.Tracks {
			tracks[i] = Track{
				Name:       t.Name,
				Artist:     t.Artist,
				DurationMs: t.DurationMs,
			}
		}
		return tracks, nil
	}
	return nil, errors.Wrapf(ErrPlaylistNotFound, "playlist %q", playlistID)
}
