package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLoadMissingKey(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("dodgebullets-highScore"); !errors.Is(err, ErrNoScore) {
		t.Fatalf("err = %v, want ErrNoScore", err)
	}
}

func TestSaveIfHigherThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	m := NewManager(dir)

	tests := []struct {
		value     float64
		wantBest  float64
		wantSaved bool
	}{
		{7.25, 7.25, true},
		{9.5, 9.5, true},
		{3, 9.5, false},
		{9.5, 9.5, false},
	}
	for _, tt := range tests {
		best, saved, err := m.SaveIfHigher("dodgebullets-highScore", tt.value)
		if err != nil {
			t.Fatalf("SaveIfHigher(%v): %v", tt.value, err)
		}
		if best != tt.wantBest || saved != tt.wantSaved {
			t.Errorf("SaveIfHigher(%v) = %v, %v, want %v, %v", tt.value, best, saved, tt.wantBest, tt.wantSaved)
		}
	}

	got, err := m.Load("dodgebullets-highScore")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 9.5 {
		t.Fatalf("Load = %v, want 9.5", got)
	}

	data, err := os.ReadFile(m.FilePath("dodgebullets-highScore"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(data), `key = "dodgebullets-highScore"`) {
		t.Fatalf("unexpected file contents:\n%s", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the score file, found %d entries", len(entries))
	}
}

func TestSaveIfHigherConcurrent(t *testing.T) {
	m := NewManager(t.TempDir())

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			if _, _, err := m.SaveIfHigher("k", v); err != nil {
				t.Errorf("SaveIfHigher(%v): %v", v, err)
			}
		}(float64(i))
	}
	wg.Wait()

	if got, err := m.Load("k"); err != nil || got != 20 {
		t.Fatalf("Load = %v, %v, want 20", got, err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	if err := os.WriteFile(m.FilePath("k"), []byte("value = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := m.Load("k")
	if err == nil || errors.Is(err, ErrNoScore) {
		t.Fatalf("err = %v, want decode error", err)
	}

	if _, saved, err := m.SaveIfHigher("k", 5); err == nil || saved {
		t.Fatalf("SaveIfHigher over corrupt file = %v, %v, want error", saved, err)
	}
	if data, _ := os.ReadFile(m.FilePath("k")); string(data) != "value = [" {
		t.Fatalf("corrupt file was overwritten: %q", data)
	}
}
