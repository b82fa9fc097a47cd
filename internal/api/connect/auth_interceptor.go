package connect

import (
	"context"
	"crypto/subtle"
	"time"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"

	"github.com/osa030/playtime/internal/infra/config"
	"github.com/osa030/playtime/internal/infra/metrics"
)

const (
	// TokenHeader is the header name for the API token.
	TokenHeader = "X-Playtime-Token"
)

// NewTokenInterceptor creates an interceptor that validates the API token
// from request metadata. An empty configured token lets every request through.
func NewTokenInterceptor(cfg *config.Config) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if cfg.Server.Token == "" {
				return next(ctx, req)
			}

			token := req.Header().Get(TokenHeader)
			if token == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("missing token"))
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Server.Token)) != 1 {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid token"))
			}

			return next(ctx, req)
		}
	}
}

// NewMetricsInterceptor records request counts and latency per procedure.
func NewMetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			metrics.RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
			metrics.RPCRequestDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}
