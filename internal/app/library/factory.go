package library

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playtime/internal/infra/config"
)

// NewSourceFromConfig creates the configured library source.
// It returns nil without error when no library is configured.
func NewSourceFromConfig(cfg *config.Config) (Source, error) {
	lcfg := cfg.Library
	if lcfg.Type == "" {
		zlog.Info().Msg("no music library configured")
		return nil, nil
	}

	zlog.Debug().Msgf("creating library source: type=%s", lcfg.Type)
	switch lcfg.Type {
	case "catalog":
		src, err := NewCatalogSource(lcfg.Settings)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create library source (type %s)", lcfg.Type)
		}
		zlog.Info().Msgf("registered library source: type=%s", lcfg.Type)
		return src, nil

	default:
		return nil, errors.Newf("unsupported library type: %s", lcfg.Type)
	}
}
