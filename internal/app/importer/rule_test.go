package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelimitedRule(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		matches  bool
		expected Extraction
	}{
		{
			name:     "name artist duration",
			line:     "Bohemian Rhapsody, Queen, 5:55",
			matches:  true,
			expected: Extraction{Name: "Bohemian Rhapsody", Artist: "Queen", Duration: "5:55"},
		},
		{
			name:     "quoted fields",
			line:     `"Hotel California","Eagles","6:30"`,
			matches:  true,
			expected: Extraction{Name: "Hotel California", Artist: "Eagles", Duration: "6:30"},
		},
		{
			name:     "duration found in a later column",
			line:     "Song, Artist, Album, 1:02:03, 1999",
			matches:  true,
			expected: Extraction{Name: "Song", Artist: "Artist", Duration: "1:02:03"},
		},
		{
			name:     "no valid duration",
			line:     "Song, Artist, about 3 min",
			matches:  true,
			expected: Extraction{Name: "Song", Artist: "Artist"},
		},
		{
			name:     "too few fields yields nothing",
			line:     "Hello, World",
			matches:  true,
			expected: Extraction{},
		},
		{
			name:    "no comma",
			line:    "Imagine - John Lennon",
			matches: false,
		},
	}

	r := DelimitedRule{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, r.Matches(tt.line))
			if tt.matches {
				assert.Equal(t, tt.expected, r.Extract(tt.line))
			}
		})
	}
}

func TestSeparatedRule(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		matches  bool
		expected Extraction
	}{
		{
			name:     "tab separated",
			line:     "Imagine\tJohn Lennon\t3:03",
			matches:  true,
			expected: Extraction{Name: "Imagine", Artist: "John Lennon", Duration: "3:03"},
		},
		{
			name:     "dash separated with trailing text keeps duration empty",
			line:     "Imagine - John Lennon 3:03",
			matches:  true,
			expected: Extraction{Name: "Imagine", Artist: "John Lennon 3:03"},
		},
		{
			name:     "dash separated with duration field",
			line:     "Imagine - John Lennon - 3:03",
			matches:  true,
			expected: Extraction{Name: "Imagine", Artist: "John Lennon", Duration: "3:03"},
		},
		{
			name:     "tab wins over dash",
			line:     "Nuvole Bianche - Live\tLudovico Einaudi\t5:44",
			matches:  true,
			expected: Extraction{Name: "Nuvole Bianche - Live", Artist: "Ludovico Einaudi", Duration: "5:44"},
		},
		{
			name:    "hyphen without spaces",
			line:    "Anti-Hero 3:20",
			matches: false,
		},
	}

	r := SeparatedRule{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, r.Matches(tt.line))
			if tt.matches {
				assert.Equal(t, tt.expected, r.Extract(tt.line))
			}
		})
	}
}

func TestFreeformRule(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Extraction
	}{
		{
			name:     "trailing duration",
			line:     "Some Song 4:30",
			expected: Extraction{Name: "Some Song", Duration: "4:30"},
		},
		{
			name:     "leading duration",
			line:     "4:30 Some Song",
			expected: Extraction{Name: "Some Song", Duration: "4:30"},
		},
		{
			name:     "hours duration",
			line:     "Mix 1:02:03",
			expected: Extraction{Name: "Mix", Duration: "1:02:03"},
		},
		{
			name:     "every occurrence removed",
			line:     "3:00 to 3:00",
			expected: Extraction{Name: "to", Duration: "3:00"},
		},
		{
			name:     "no duration",
			line:     "Just a title",
			expected: Extraction{Name: "Just a title"},
		},
		{
			name:     "duration only",
			line:     "4:30",
			expected: Extraction{Duration: "4:30"},
		},
	}

	r := FreeformRule{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, r.Matches(tt.line))
			assert.Equal(t, tt.expected, r.Extract(tt.line))
		})
	}
}

func TestExtraction_Empty(t *testing.T) {
	assert.True(t, Extraction{}.Empty())
	assert.True(t, Extraction{Artist: "Queen"}.Empty())
	assert.False(t, Extraction{Name: "x"}.Empty())
	assert.False(t, Extraction{Duration: "3:00"}.Empty())
}
