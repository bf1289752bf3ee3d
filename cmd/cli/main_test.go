package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "plain words",
			line:     "reserve 2",
			expected: []string{"reserve", "2"},
		},
		{
			name:     "double-quoted multi-word argument",
			line:     `addCamp "Shelter A" 2`,
			expected: []string{"addCamp", "Shelter A", "2"},
		},
		{
			name:     "single-quoted argument",
			line:     "addCamp 'Riverside Hall' 10",
			expected: []string{"addCamp", "Riverside Hall", "10"},
		},
		{
			name:     "quoted flag value",
			line:     `register --name "Priya Sharma" --role refugee`,
			expected: []string{"register", "--name", "Priya Sharma", "--role", "refugee"},
		},
		{
			name:     "extra whitespace collapsed",
			line:     "  camps   ",
			expected: []string{"camps"},
		},
		{
			name:     "empty quotes dropped",
			line:     `camps ""`,
			expected: []string{"camps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := parseCommandLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestParseCommandLine_UnclosedQuote(t *testing.T) {
	_, err := parseCommandLine(`addCamp "Shelter A`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed quote")
}
