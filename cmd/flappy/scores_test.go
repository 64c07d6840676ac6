package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flappy-snickers/internal/storage"
)

func TestPrintBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	var buf bytes.Buffer
	if err := printBest(ctx, &buf, store); err != nil {
		t.Fatalf("printBest() failed: %v", err)
	}
	if buf.String() != "0\n" {
		t.Errorf("empty store printed %q, expected %q", buf.String(), "0\n")
	}

	for _, score := range []int{3, 11, 7} {
		if _, err := store.SaveScore(ctx, "ABC", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	buf.Reset()
	if err := printBest(ctx, &buf, store); err != nil {
		t.Fatalf("printBest() failed: %v", err)
	}
	if buf.String() != "11\n" {
		t.Errorf("printed %q, expected %q", buf.String(), "11\n")
	}
}
