package ui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string is kept",
			input:    "Hello",
			maxLen:   10,
			expected: "Hello",
		},
		{
			name:     "exactly max length",
			input:    "Hello",
			maxLen:   5,
			expected: "Hello",
		},
		{
			name:     "long string is truncated",
			input:    "Hello World",
			maxLen:   8,
			expected: "Hello...",
		},
		{
			name:     "empty string",
			input:    "",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "zero maxLen",
			input:    "Hello",
			maxLen:   0,
			expected: "",
		},
		{
			name:     "negative maxLen",
			input:    "Hello",
			maxLen:   -1,
			expected: "",
		},
		{
			name:     "maxLen of 3 or less has no ellipsis",
			input:    "Hello",
			maxLen:   3,
			expected: "Hel",
		},
		{
			name:     "multibyte runes are not split",
			input:    "建立一個分析工具",
			maxLen:   5,
			expected: "建立...",
		},
		{
			name:     "long command",
			input:    "webpack --config webpack.prod.js --progress",
			maxLen:   20,
			expected: "webpack --config ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestTruncateLength(t *testing.T) {
	testCases := []struct {
		input  string
		maxLen int
	}{
		{"Hello World!", 5},
		{"Hello World!", 10},
		{"Short", 10},
		{"A very long string that needs truncation", 20},
	}

	for _, tc := range testCases {
		result := Truncate(tc.input, tc.maxLen)
		if n := utf8.RuneCountInString(result); n > tc.maxLen {
			t.Errorf("Truncate(%q, %d) returned %d runes, expected <= %d",
				tc.input, tc.maxLen, n, tc.maxLen)
		}
	}
}
