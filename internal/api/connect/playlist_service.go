package connect

import (
	"context"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/osa030/playtime/internal/app/calculator"
	"github.com/osa030/playtime/internal/app/importer"
	"github.com/osa030/playtime/internal/domain/song"
	"github.com/osa030/playtime/internal/domain/timecode"
	"github.com/osa030/playtime/internal/infra/config"
	"github.com/osa030/playtime/internal/infra/metrics"
)

// PlaylistService implements the PlaylistService RPC.
// It is stateless: callers send the whole song list with every request.
type PlaylistService struct {
	calc     *calculator.Calculator
	importer *importer.Importer
	config   *config.Config
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(calc *calculator.Calculator, im *importer.Importer, cfg *config.Config) *PlaylistService {
	return &PlaylistService{
		calc:     calc,
		importer: im,
		config:   cfg,
	}
}

// Calculate returns every timing result for the given songs.
func (s *PlaylistService) Calculate(
	ctx context.Context,
	req *connect.Request[CalculateRequest],
) (*connect.Response[CalculateResponse], error) {
	var settings calculator.TimeSettings

	if req.Msg.StartTime != "" {
		start, err := s.calc.ParseClock(req.Msg.StartTime)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.Wrap(err, "start_time"))
		}
		settings.StartTime = &start
	}
	if req.Msg.TargetEndTime != "" {
		target, err := s.calc.ParseClock(req.Msg.TargetEndTime)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.Wrap(err, "target_end_time"))
		}
		settings.TargetEndTime = &target
	}

	songs := songsFromMessages(req.Msg.Songs)
	summary := s.calc.Summarize(songs, settings)

	metrics.PlaylistSongs.Observe(float64(len(songs)))
	if summary.Target != nil && summary.Target.PlaylistTooLong {
		metrics.PlaylistTooLongTotal.Inc()
	}

	resp := &CalculateResponse{
		TotalDuration:     summary.TotalDuration,
		TotalSeconds:      summary.TotalSeconds,
		EndTimeFromNow:    summary.EndTimeFromNow,
		EndTimeFromStart:  summary.EndTimeFromStart,
		AverageSongLength: summary.AverageLength,
		TotalSongs:        summary.Stats.Total,
		SelectedSongs:     summary.Stats.Selected,
		HasValidSongs:     summary.HasValidSongs,
	}
	if t := summary.Target; t != nil {
		resp.Target = &TargetInfo{
			TimeUntil:         t.TimeUntil,
			TimeUntilSeconds:  t.UntilSeconds,
			Difference:        t.Difference,
			DifferenceSeconds: t.DiffSeconds,
			PlaylistTooLong:   t.PlaylistTooLong,
		}
	}
	return connect.NewResponse(resp), nil
}

// Import parses pasted playlist text into songs.
// Text that yields no songs is rejected so the caller keeps its current list.
func (s *PlaylistService) Import(
	ctx context.Context,
	req *connect.Request[ImportRequest],
) (*connect.Response[ImportResponse], error) {
	report := s.importer.ParseReport(req.Msg.Text)

	metrics.ImportLinesTotal.WithLabelValues("parsed").Add(float64(len(report.Records)))
	metrics.ImportLinesTotal.WithLabelValues("dropped").Add(float64(report.Dropped))

	if len(report.Records) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New(s.config.GetMessage("nothing_to_import")))
	}

	return connect.NewResponse(&ImportResponse{
		Songs:   songsToMessages(importer.ToSongs(report.Records)),
		Dropped: report.Dropped,
	}), nil
}

// FormatDuration normalizes a duration typed by the user.
func (s *PlaylistService) FormatDuration(
	ctx context.Context,
	req *connect.Request[FormatDurationRequest],
) (*connect.Response[FormatDurationResponse], error) {
	formatted := timecode.FormatInput(req.Msg.Text)
	return connect.NewResponse(&FormatDurationResponse{
		Text:    formatted,
		Valid:   timecode.IsValid(formatted),
		Seconds: timecode.ParseToSeconds(formatted),
	}), nil
}

func songsFromMessages(msgs []Song) []song.Song {
	songs := make([]song.Song, len(msgs))
	for i, m := range msgs {
		id := m.ID
		if id == "" {
			id = uuid.NewString()
		}
		selected := true
		if m.Selected != nil {
			selected = *m.Selected
		}
		songs[i] = song.Song{
			ID:       id,
			Name:     m.Name,
			Artist:   m.Artist,
			Duration: m.Duration,
			Selected: selected,
		}
	}
	return songs
}

func songsToMessages(songs []song.Song) []Song {
	msgs := make([]Song, len(songs))
	for i, s := range songs {
		selected := s.Selected
		msgs[i] = Song{
			ID:       s.ID,
			Name:     s.Name,
			Artist:   s.Artist,
			Duration: s.Duration,
			Selected: &selected,
		}
	}
	return msgs
}
