// Package main provides the playtime command line client.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	apiconnect "github.com/osa030/playtime/internal/api/connect"
	"github.com/osa030/playtime/internal/app/calculator"
	"github.com/osa030/playtime/internal/app/importer"
	"github.com/osa030/playtime/internal/app/library"
	"github.com/osa030/playtime/internal/domain/playlist"
	"github.com/osa030/playtime/internal/domain/song"
	"github.com/osa030/playtime/internal/domain/timecode"
	"github.com/osa030/playtime/internal/infra/config"
	"github.com/osa030/playtime/internal/infra/logger"
)

var (
	app        = kingpin.New("playtime", "playlist timing calculator")
	configPath = app.Flag("config", "Path to config file").Envar("PLAYTIME_CONFIG").String()
	server     = app.Flag("server", "Use a playtime server instead of computing locally").String()
	token      = app.Flag("token", "API token for the library service").Envar("PLAYTIME_TOKEN").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()

	// calc command
	calcCmd    = app.Command("calc", "Calculate timing for a pasted playlist")
	calcFile   = calcCmd.Arg("file", "Playlist text file (default: stdin)").String()
	calcStart  = calcCmd.Flag("start", "Start time (e.g. 20:00, 8:00 PM)").Short('s').String()
	calcTarget = calcCmd.Flag("target", "Target end time (e.g. 22:30)").Short('t').String()

	// import command
	importCmd  = app.Command("import", "Parse pasted playlist text and print the songs")
	importFile = importCmd.Arg("file", "Playlist text file (default: stdin)").String()

	// format command
	formatCmd  = app.Command("format", "Normalize durations")
	formatArgs = formatCmd.Arg("duration", "Durations such as 05:05 or 1:02:03").Required().Strings()

	// playlists command
	playlistsCmd        = app.Command("playlists", "List playlists in the music library")
	playlistsCredential = playlistsCmd.Flag("credential", "Library client ID").Envar("PLAYTIME_LIBRARY_CREDENTIAL").String()

	// tracks command
	tracksCmd        = app.Command("tracks", "Import a playlist from the music library")
	tracksPlaylist   = tracksCmd.Arg("playlist-id", "Playlist ID").Required().String()
	tracksCredential = tracksCmd.Flag("credential", "Library client ID").Envar("PLAYTIME_LIBRARY_CREDENTIAL").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(logger.Config{Output: "stderr", Level: level}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fail(err)
		}
	}

	ctx := context.Background()

	var err error
	switch command {
	case calcCmd.FullCommand():
		err = calc(ctx, cfg)
	case importCmd.FullCommand():
		err = importText(ctx, cfg)
	case formatCmd.FullCommand():
		err = format(ctx)
	case playlistsCmd.FullCommand():
		err = listPlaylists(ctx, cfg)
	case tracksCmd.FullCommand():
		err = importPlaylist(ctx, cfg)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func client() *apiconnect.Client {
	return apiconnect.NewClient(http.DefaultClient, *server, *token)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), errors.Wrap(err, "failed to read stdin")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(data), nil
}

func newCalculator(cfg *config.Config) (*calculator.Calculator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return calculator.New(calculator.Config{Location: loc, Layout: cfg.Clock.Layout}), nil
}

func newImporter(cfg *config.Config) *importer.Importer {
	return importer.New(importer.Config{
		SongPrefix:    cfg.Import.SongPrefix,
		UnknownArtist: cfg.Import.UnknownArtist,
	})
}

// loadSongs parses the input into songs, locally or on the server.
func loadSongs(ctx context.Context, cfg *config.Config, path string) ([]song.Song, error) {
	text, err := readInput(path)
	if err != nil {
		return nil, err
	}

	if *server != "" {
		resp, err := client().Import(ctx, text)
		if err != nil {
			return nil, err
		}
		songs := make([]song.Song, len(resp.Songs))
		for i, s := range resp.Songs {
			songs[i] = song.Song{ID: s.ID, Name: s.Name, Artist: s.Artist, Duration: s.Duration, Selected: true}
		}
		return songs, nil
	}

	list := playlist.New()
	if !list.Replace(importer.ToSongs(newImporter(cfg).Parse(text))) {
		return nil, errors.New(cfg.GetMessage("nothing_to_import"))
	}
	return list.Songs(), nil
}

func calc(ctx context.Context, cfg *config.Config) error {
	songs, err := loadSongs(ctx, cfg, *calcFile)
	if err != nil {
		return err
	}

	if *server != "" {
		req := &apiconnect.CalculateRequest{StartTime: *calcStart, TargetEndTime: *calcTarget}
		for _, s := range songs {
			req.Songs = append(req.Songs, apiconnect.Song{Name: s.Name, Artist: s.Artist, Duration: s.Duration})
		}
		resp, err := client().Calculate(ctx, req)
		if err != nil {
			return err
		}
		summary := calculator.Summary{
			TotalDuration:    resp.TotalDuration,
			EndTimeFromNow:   resp.EndTimeFromNow,
			EndTimeFromStart: resp.EndTimeFromStart,
			AverageLength:    resp.AverageSongLength,
			Stats:            calculator.Stats{Total: resp.TotalSongs, Selected: resp.SelectedSongs},
			HasValidSongs:    resp.HasValidSongs,
		}
		if t := resp.Target; t != nil {
			summary.Target = &calculator.TargetSummary{
				TimeUntil:       t.TimeUntil,
				Difference:      t.Difference,
				PlaylistTooLong: t.PlaylistTooLong,
			}
		}
		printSongs(songs)
		printSummary(summary)
		return nil
	}

	c, err := newCalculator(cfg)
	if err != nil {
		return err
	}

	var settings calculator.TimeSettings
	if *calcStart != "" {
		start, err := c.ParseClock(*calcStart)
		if err != nil {
			return errors.Wrap(err, "invalid --start")
		}
		settings.StartTime = &start
	}
	if *calcTarget != "" {
		target, err := c.ParseClock(*calcTarget)
		if err != nil {
			return errors.Wrap(err, "invalid --target")
		}
		settings.TargetEndTime = &target
	}

	zlog.Debug().Msgf("Calculating: songs=%d", len(songs))
	printSongs(songs)
	printSummary(c.Summarize(songs, settings))
	return nil
}

func importText(ctx context.Context, cfg *config.Config) error {
	songs, err := loadSongs(ctx, cfg, *importFile)
	if err != nil {
		return err
	}
	printSongs(songs)
	return nil
}

func format(ctx context.Context) error {
	for _, text := range *formatArgs {
		if *server != "" {
			resp, err := client().FormatDuration(ctx, text)
			if err != nil {
				return err
			}
			printFormat(text, resp.Text, resp.Valid, resp.Seconds)
			continue
		}
		formatted := timecode.FormatInput(text)
		printFormat(text, formatted, timecode.IsValid(formatted), timecode.ParseToSeconds(formatted))
	}
	return nil
}

func printFormat(input, formatted string, valid bool, seconds int) {
	status := "ok"
	if !valid {
		status = "invalid"
	}
	fmt.Printf("%-10s -> %-10s %-8s %ds\n", input, formatted, status, seconds)
}

// localSession connects to the library configured in cfg.
func localSession(ctx context.Context, cfg *config.Config, credential string) (*library.Session, library.Result, error) {
	source, err := library.NewSourceFromConfig(cfg)
	if err != nil {
		return nil, library.Result{}, err
	}
	if source == nil {
		return nil, library.Result{}, errors.New("no music library configured (set library.type in the config file)")
	}
	session := library.NewSession(source, cfg)
	return session, session.Connect(ctx, credential), nil
}

func listPlaylists(ctx context.Context, cfg *config.Config) error {
	if *server != "" {
		resp, err := client().ListPlaylists(ctx, *playlistsCredential)
		if err != nil {
			return err
		}
		if !resp.Success {
			fmt.Printf("Rejected [%s]: %s\n", resp.Code, resp.Message)
			return nil
		}
		for _, p := range resp.Playlists {
			fmt.Printf("  %-20s %-30s %3d tracks\n", p.ID, p.Name, p.TrackCount)
		}
		return nil
	}

	_, result, err := localSession(ctx, cfg, *playlistsCredential)
	if err != nil {
		return err
	}
	if !result.OK {
		fmt.Printf("Rejected [%s]: %s\n", result.Code, result.Message)
		return nil
	}
	for _, p := range result.Playlists {
		fmt.Printf("  %-20s %-30s %3d tracks\n", p.ID, p.Name, p.TrackCount)
	}
	return nil
}

func importPlaylist(ctx context.Context, cfg *config.Config) error {
	if *server != "" {
		resp, err := client().ImportPlaylist(ctx, *tracksCredential, *tracksPlaylist)
		if err != nil {
			return err
		}
		if !resp.Success {
			fmt.Printf("Rejected [%s]: %s\n", resp.Code, resp.Message)
			return nil
		}
		songs := make([]song.Song, len(resp.Songs))
		for i, s := range resp.Songs {
			songs[i] = song.Song{Name: s.Name, Artist: s.Artist, Duration: s.Duration, Selected: true}
		}
		printSongs(songs)
		return nil
	}

	session, result, err := localSession(ctx, cfg, *tracksCredential)
	if err != nil {
		return err
	}
	if result.OK {
		result = session.ImportPlaylist(ctx, *tracksPlaylist)
	}
	if !result.OK {
		fmt.Printf("Rejected [%s]: %s\n", result.Code, result.Message)
		return nil
	}
	printSongs(result.Songs)
	return nil
}

func printSongs(songs []song.Song) {
	for i, s := range songs {
		mark := " "
		if !s.HasValidDuration() {
			mark = "!"
		}
		fmt.Printf("%3d. %s %-8s %-30s %s\n", i+1, mark, s.Duration, s.Name, s.Artist)
	}
}

func printSummary(s calculator.Summary) {
	fmt.Println()
	fmt.Printf("Songs:          %d (%d selected)\n", s.Stats.Total, s.Stats.Selected)
	fmt.Printf("Total duration: %s\n", s.TotalDuration)
	fmt.Printf("Average length: %s\n", s.AverageLength)
	fmt.Printf("Ends from now:  %s\n", s.EndTimeFromNow)
	if s.EndTimeFromStart != nil {
		fmt.Printf("Ends at:        %s\n", *s.EndTimeFromStart)
	}
	if t := s.Target; t != nil {
		fmt.Printf("Until target:   %s\n", t.TimeUntil)
		if t.PlaylistTooLong {
			fmt.Printf("Too long by:    %s\n", t.Difference)
		} else {
			fmt.Printf("Time left:      %s\n", t.Difference)
		}
	}
	if !s.HasValidSongs {
		fmt.Println("No selected song has a valid duration.")
	}
}
