package core

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"abc", "ABC"},
		{"abcdef", "ABC"},
		{"  jo ", "JO"},
		{"a.b-c!d", "ABC"},
		{"", ""},
		{"!!!", ""},
		{"élan", "ÉLA"},
		{"r2d2", "R2D"},
	}

	for _, tc := range tests {
		if got := NormalizeName(tc.in); got != tc.expected {
			t.Errorf("NormalizeName(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
