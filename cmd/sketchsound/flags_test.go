// ABOUTME: Tests for CLI flag helpers
// ABOUTME: Tests format list splitting and port parsing
package main

import "testing"

func TestSplitFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"ogg,mp3", []string{"ogg", "mp3"}},
		{" ogg , MP3 ", []string{"ogg", "MP3"}},
		{"wav,,aac,", []string{"wav", "aac"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := splitFormats(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("index %d: expected %s, got %s", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr    string
		port    int
		wantErr bool
	}{
		{":8930", 8930, false},
		{"127.0.0.1:9000", 9000, false},
		{"8930", 0, true},
		{":http", 0, true},
		{":0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			port, err := portOf(tt.addr)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.addr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if port != tt.port {
				t.Errorf("expected port %d, got %d", tt.port, port)
			}
		})
	}
}
