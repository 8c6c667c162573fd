package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLon float64
	}{
		{"comma separated", "-6.2, 106.816666", -6.2, 106.816666},
		{"comma no space", "-6.2,106.816666", -6.2, 106.816666},
		{"whitespace separated", "-6.2 106.816666", -6.2, 106.816666},
		{"tab separated", "-6.2\t106.816666", -6.2, 106.816666},
		{"padded", "  -6.2 , 106.816666  ", -6.2, 106.816666},
		{"integers", "7, 110", 7, 110},
		{"out of range passes through", "123.0, 456.0", 123.0, 456.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := ParseCoordinates(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLat, lat)
			assert.Equal(t, tt.wantLon, lon)
		})
	}
}

func TestParseCoordinates_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"single token", "-6.2"},
		{"three tokens", "-6.2, 106.8, 12"},
		{"trailing comma", "-6.2, 106.8,"},
		{"non-numeric latitude", "south, 106.8"},
		{"non-numeric longitude", "-6.2, east"},
		{"url pasted into the cell", "https://maps.example.com/@-6.2,106.8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCoordinates(tt.text)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.text, pe.Text)
			assert.Contains(t, err.Error(), "invalid coordinate")
		})
	}
}
