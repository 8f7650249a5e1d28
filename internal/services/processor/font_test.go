package processor

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/font/gofont/gobold"
)

func writeFontFiles(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindFonts_RanksCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFontFiles(t,
		filepath.Join(dir, "a", "WQY-ZENHEI.TTC"),
		filepath.Join(dir, "b", "nested", "simhei.ttf"),
		filepath.Join(dir, "c", "other.ttf"),
	)

	got := findFonts([]string{filepath.Join(dir, "missing"), dir}, boldCJKFonts)
	want := []string{
		filepath.Join(dir, "b", "nested", "simhei.ttf"),
		filepath.Join(dir, "a", "WQY-ZENHEI.TTC"),
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("findFonts=%q, want %q", got, want)
	}

	if got := findFonts([]string{filepath.Join(dir, "c")}, boldCJKFonts); len(got) != 0 {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestFontLoader_TriesEveryCandidate(t *testing.T) {
	dir := t.TempDir()
	writeFontFiles(t, filepath.Join(dir, "msyhbd.ttf"))
	// A parseable font without CJK glyphs is skipped as well.
	if err := os.WriteFile(filepath.Join(dir, "simhei.ttf"), gobold.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zap.WarnLevel)
	l := NewFontLoader("", []string{dir}, false, zap.New(core))
	defer l.Close()

	if _, err := l.Face(16); err != nil {
		t.Fatalf("Face: %v", err)
	}
	skipped := logs.FilterMessage("Skipping unusable system font").All()
	if len(skipped) != 2 {
		t.Fatalf("skipped %d fonts, want 2", len(skipped))
	}
	if l.Source() != "gobold" {
		t.Fatalf("Source=%q, want gobold", l.Source())
	}
}

func TestFontLoader_FallsBackToEmbeddedFont(t *testing.T) {
	l := NewFontLoader(filepath.Join(t.TempDir(), "missing.ttf"), nil, false, nil)
	defer l.Close()

	face, err := l.Face(24)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if l.Source() != "gobold" {
		t.Fatalf("Source=%q, want gobold", l.Source())
	}
	again, err := l.Face(24)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face != again {
		t.Fatalf("expected the cached face for the same size")
	}
	if h := face.Metrics().Height.Ceil(); h < 24 {
		t.Fatalf("line height %d too small for a 24px face", h)
	}
}

func TestFontLoader_ConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bold.ttf")
	if err := os.WriteFile(path, gobold.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewFontLoader(path, nil, false, nil)
	defer l.Close()
	if _, err := l.Face(12); err != nil {
		t.Fatalf("Face: %v", err)
	}
	if l.Source() != path {
		t.Fatalf("Source=%q, want %q", l.Source(), path)
	}
}

func TestFontLoader_InvalidSize(t *testing.T) {
	l := NewFontLoader("", nil, false, nil)
	if _, err := l.Face(0); err == nil {
		t.Fatalf("expected error for size 0")
	}
}
