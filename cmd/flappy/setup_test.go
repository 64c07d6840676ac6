package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, expected string
	}{
		{"~/.arcade/scores.db", filepath.Join(home, ".arcade/scores.db")},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"scores.db", "scores.db"},
		{"~user/x", "~user/x"},
	}

	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	defer func() { flagLeaderboard, flagName, flagConfig = "", "", "" }()

	flagConfig = filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(flagConfig, []byte("leaderboard:\n  url: http://example.test/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Leaderboard.URL != "http://example.test/" {
		t.Errorf("URL = %q, expected the file's value", cfg.Leaderboard.URL)
	}

	flagLeaderboard = "http://other.test/"
	flagName = "abc"
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Leaderboard.URL != "http://other.test/" || cfg.Leaderboard.PlayerName != "abc" {
		t.Errorf("flags should override the file, got %+v", cfg.Leaderboard)
	}
}

func TestNewLoggerToFile(t *testing.T) {
	defer func() { flagLogFile, flagLogLevel = "", "info" }()

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "logs", "flappy.log")

	logger, closer, err := newLogger("test", "")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello")
	closer.Close()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if len(data) == 0 {
		t.Error("debug message should be written at debug level")
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	defer func() { flagLogLevel = "info" }()
	flagLogLevel = "loud"

	if _, _, err := newLogger("test", ""); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
