package valence

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLexiconScore(t *testing.T) {
	lex := Lexicon{"good": 0.5, "bad": -0.25}

	tests := []struct {
		phrase string
		want   float64
	}{
		{"good", 0.5},
		{"Good", 0.5},
		{"good cake", 0.5},
		{"good bad", 0.25},
		{"unknown", 0},
		{"", 0},
	}

	for _, tc := range tests {
		if got := lex.Score(tc.phrase); got != tc.want {
			t.Errorf("score %q: got %v, want %v", tc.phrase, got, tc.want)
		}
	}
}

func TestNeutral(t *testing.T) {
	if got := Neutral().Score("good"); got != 0 {
		t.Errorf("score: got %v, want 0", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valence.json")
	if err := os.WriteFile(path, []byte(`{"good": 0.7, "bad": -0.6}`), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := lex.Score("bad"); got != -0.6 {
		t.Errorf("score: got %v, want -0.6", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for broken file")
	}
}
