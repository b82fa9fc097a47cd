package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Record
	}{
		{
			name:  "csv lines",
			input: "Bohemian Rhapsody, Queen, 5:55\nHotel California, Eagles, 6:30",
			expected: []Record{
				{Name: "Bohemian Rhapsody", Artist: "Queen", Duration: "5:55"},
				{Name: "Hotel California", Artist: "Eagles", Duration: "6:30"},
			},
		},
		{
			name:  "dash separated with trailing duration",
			input: "Imagine - John Lennon 3:03",
			expected: []Record{
				{Name: "Imagine", Artist: "John Lennon 3:03", Duration: ""},
			},
		},
		{
			name:  "freeform",
			input: "Some Song 4:30",
			expected: []Record{
				{Name: "Some Song", Artist: "Unknown Artist", Duration: "4:30"},
			},
		},
		{
			name:     "blank input",
			input:    "",
			expected: []Record{},
		},
		{
			name:     "whitespace only input",
			input:    "  \n\t\n   \r\n",
			expected: []Record{},
		},
		{
			name:     "under-populated comma lines are dropped",
			input:    "Hello, World\nfoo,bar",
			expected: []Record{},
		},
		{
			name:  "placeholder name uses index among non-blank lines",
			input: "\n\nFirst 3:00\n\n4:30\n",
			expected: []Record{
				{Name: "First", Artist: "Unknown Artist", Duration: "3:00"},
				{Name: "Song 2", Artist: "Unknown Artist", Duration: "4:30"},
			},
		},
		{
			name:  "empty name column gets placeholder",
			input: ",Queen,5:55",
			expected: []Record{
				{Name: "Song 1", Artist: "Queen", Duration: "5:55"},
			},
		},
		{
			name:  "artist without name or duration is dropped",
			input: ",Queen,",
			expected: []Record{},
		},
		{
			name:  "name without duration is kept",
			input: "Just a title",
			expected: []Record{
				{Name: "Just a title", Artist: "Unknown Artist", Duration: ""},
			},
		},
		{
			name:  "windows line endings and mixed formats",
			input: "A, B, 3:00\r\nC\tD\t4:00\r\nE 5:00\r\n",
			expected: []Record{
				{Name: "A", Artist: "B", Duration: "3:00"},
				{Name: "C", Artist: "D", Duration: "4:00"},
				{Name: "E", Artist: "Unknown Artist", Duration: "5:00"},
			},
		},
		{
			name:  "surrounding whitespace trimmed per line",
			input: "   Song One - Artist One - 2:15   ",
			expected: []Record{
				{Name: "Song One", Artist: "Artist One", Duration: "2:15"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestImporter_CustomPlaceholders(t *testing.T) {
	im := New(Config{SongPrefix: "Track", UnknownArtist: "Various"})

	records := im.Parse("3:00")
	require.Len(t, records, 1)
	assert.Equal(t, Record{Name: "Track 1", Artist: "Various", Duration: "3:00"}, records[0])
}

func TestToSongs(t *testing.T) {
	records := Parse("Bohemian Rhapsody, Queen, 5:55\nHotel California, Eagles, 6:30")
	songs := ToSongs(records)

	require.Len(t, songs, 2)
	for i, s := range songs {
		assert.NotEmpty(t, s.ID)
		assert.True(t, s.Selected)
		assert.Equal(t, records[i].Name, s.Name)
		assert.Equal(t, records[i].Artist, s.Artist)
		assert.Equal(t, records[i].Duration, s.Duration)
	}
	assert.NotEqual(t, songs[0].ID, songs[1].ID)
	assert.Equal(t, 355, songs[0].DurationInSeconds())
}

func TestToSongs_Empty(t *testing.T) {
	assert.Empty(t, ToSongs(nil))
}

func TestImporter_ParseReport(t *testing.T) {
	report := New(Config{}).ParseReport("Bohemian Rhapsody, Queen, 5:55\n\nHello, World\nSome Song 4:30\n")

	assert.Equal(t, 3, report.Lines)
	assert.Equal(t, 1, report.Dropped)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "Some Song", report.Records[1].Name)
}
