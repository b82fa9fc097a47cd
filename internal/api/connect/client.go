package connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// Client calls both services over HTTP.
type Client struct {
	token string

	calculate      *connect.Client[CalculateRequest, CalculateResponse]
	importText     *connect.Client[ImportRequest, ImportResponse]
	formatDuration *connect.Client[FormatDurationRequest, FormatDurationResponse]
	listPlaylists  *connect.Client[ListPlaylistsRequest, ListPlaylistsResponse]
	importPlaylist *connect.Client[ImportPlaylistRequest, ImportPlaylistResponse]
}

// NewClient creates a client for the server at baseURL. token is sent to the
// library service when non-empty.
func NewClient(httpClient connect.HTTPClient, baseURL, token string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		token:          token,
		calculate:      connect.NewClient[CalculateRequest, CalculateResponse](httpClient, baseURL+CalculateProcedure, WithJSON()),
		importText:     connect.NewClient[ImportRequest, ImportResponse](httpClient, baseURL+ImportProcedure, WithJSON()),
		formatDuration: connect.NewClient[FormatDurationRequest, FormatDurationResponse](httpClient, baseURL+FormatDurationProcedure, WithJSON()),
		listPlaylists:  connect.NewClient[ListPlaylistsRequest, ListPlaylistsResponse](httpClient, baseURL+ListPlaylistsProcedure, WithJSON()),
		importPlaylist: connect.NewClient[ImportPlaylistRequest, ImportPlaylistResponse](httpClient, baseURL+ImportPlaylistProcedure, WithJSON()),
	}
}

// Calculate calls PlaylistService.Calculate.
func (c *Client) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	resp, err := c.calculate.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// Import calls PlaylistService.Import.
func (c *Client) Import(ctx context.Context, text string) (*ImportResponse, error) {
	resp, err := c.importText.CallUnary(ctx, connect.NewRequest(&ImportRequest{Text: text}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// FormatDuration calls PlaylistService.FormatDuration.
func (c *Client) FormatDuration(ctx context.Context, text string) (*FormatDurationResponse, error) {
	resp, err := c.formatDuration.CallUnary(ctx, connect.NewRequest(&FormatDurationRequest{Text: text}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// ListPlaylists calls LibraryService.ListPlaylists.
func (c *Client) ListPlaylists(ctx context.Context, credential string) (*ListPlaylistsResponse, error) {
	req := connect.NewRequest(&ListPlaylistsRequest{Credential: credential})
	c.authorize(req.Header())
	resp, err := c.listPlaylists.CallUnary(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// ImportPlaylist calls LibraryService.ImportPlaylist.
func (c *Client) ImportPlaylist(ctx context.Context, credential, playlistID string) (*ImportPlaylistResponse, error) {
	req := connect.NewRequest(&ImportPlaylistRequest{Credential: credential, PlaylistID: playlistID})
	c.authorize(req.Header())
	resp, err := c.importPlaylist.CallUnary(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *Client) authorize(h http.Header) {
	if c.token != "" {
		h.Set(TokenHeader, c.token)
	}
}
