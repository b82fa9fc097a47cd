package connect

// Procedure names.
const (
	PlaylistServiceName = "playtime.v1.PlaylistService"
	LibraryServiceName  = "playtime.v1.LibraryService"

	CalculateProcedure      = "/" + PlaylistServiceName + "/Calculate"
	ImportProcedure         = "/" + PlaylistServiceName + "/Import"
	FormatDurationProcedure = "/" + PlaylistServiceName + "/FormatDuration"

	ListPlaylistsProcedure  = "/" + LibraryServiceName + "/ListPlaylists"
	ImportPlaylistProcedure = "/" + LibraryServiceName + "/ImportPlaylist"
)

// Song is a song on the wire. Selected defaults to true when omitted.
type Song struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Selected *bool  `json:"selected,omitempty"`
}

type CalculateRequest struct {
	Songs         []Song `json:"songs"`
	StartTime     string `json:"start_time,omitempty"`      // "14:30", "2:30 PM" or RFC3339
	TargetEndTime string `json:"target_end_time,omitempty"` // same formats as StartTime
}

type CalculateResponse struct {
	TotalDuration     string      `json:"total_duration"`
	TotalSeconds      int         `json:"total_seconds"`
	EndTimeFromNow    string      `json:"end_time_from_now"`
	EndTimeFromStart  *string     `json:"end_time_from_start,omitempty"`
	Target            *TargetInfo `json:"target,omitempty"`
	AverageSongLength string      `json:"average_song_length"`
	TotalSongs        int         `json:"total_songs"`
	SelectedSongs     int         `json:"selected_songs"`
	HasValidSongs     bool        `json:"has_valid_songs"`
}

type TargetInfo struct {
	TimeUntil         string `json:"time_until"`
	TimeUntilSeconds  int    `json:"time_until_seconds"`
	Difference        string `json:"difference"`
	DifferenceSeconds int    `json:"difference_seconds"`
	PlaylistTooLong   bool   `json:"playlist_too_long"`
}

type ImportRequest struct {
	Text string `json:"text"`
}

type ImportResponse struct {
	Songs   []Song `json:"songs"`
	Dropped int    `json:"dropped"`
}

type FormatDurationRequest struct {
	Text string `json:"text"`
}

type FormatDurationResponse struct {
	Text    string `json:"text"`
	Valid   bool   `json:"valid"`
	Seconds int    `json:"seconds"`
}

type ListPlaylistsRequest struct {
	Credential string `json:"credential"`
}

type ListPlaylistsResponse struct {
	Success   bool       `json:"success"`
	Code      string     `json:"code"`
	Message   string     `json:"message"`
	Playlists []Playlist `json:"playlists"`
}

type Playlist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TrackCount int    `json:"track_count"`
}

type ImportPlaylistRequest struct {
	Credential string `json:"credential"`
	PlaylistID string `json:"playlist_id"`
}

type ImportPlaylistResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Songs   []Song `json:"songs"`
}
