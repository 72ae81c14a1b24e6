package resolve_test

import (
	"errors"
	"testing"

	"github.com/reinfolib/reinfolib-cli/internal/resolve"
)

func TestPrefectureCode(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"two-digit code", "13", "13"},
		{"single digit padded", "1", "01"},
		{"zero-padded code", "01", "01"},
		{"japanese name", "東京都", "13"},
		{"japanese name without suffix", "東京", "13"},
		{"english name", "Tokyo", "13"},
		{"english lowercase", "tokyo", "13"},
		{"kyoto without suffix", "京都", "26"},
		{"kyoto full", "京都府", "26"},
		{"hokkaido", "北海道", "01"},
		{"hokkaido english", "Hokkaido", "01"},
		{"osaka english", "Osaka", "27"},
		{"fuzzy partial", "Toky", "13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve.PrefectureCode(tt.query)
			if err != nil {
				t.Fatalf("PrefectureCode(%q) error: %v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("PrefectureCode(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestPrefectureCode_Invalid(t *testing.T) {
	if _, err := resolve.PrefectureCode(""); !errors.Is(err, resolve.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	for _, query := range []string{"0", "48", "99", "xyzzy"} {
		if _, err := resolve.PrefectureCode(query); err == nil {
			t.Errorf("PrefectureCode(%q): expected error", query)
		}
	}
}

func TestPrefectureName(t *testing.T) {
	name, ok := resolve.PrefectureName("13")
	if !ok || name != "東京都" {
		t.Fatalf("PrefectureName(13) = %q, %v; want 東京都, true", name, ok)
	}
	if _, ok := resolve.PrefectureName("99"); ok {
		t.Fatal("PrefectureName(99) should not resolve")
	}
}

func TestPrefectures(t *testing.T) {
	prefs := resolve.Prefectures()
	if len(prefs) != 47 {
		t.Fatalf("expected 47 prefectures, got %d", len(prefs))
	}
	if prefs[0].Code != "01" || prefs[0].NameJa != "北海道" || prefs[0].NameEn != "Hokkaido" {
		t.Errorf("unexpected first entry: %+v", prefs[0])
	}
	if prefs[46].Code != "47" || prefs[46].NameJa != "沖縄県" {
		t.Errorf("unexpected last entry: %+v", prefs[46])
	}

	// The returned slice is a copy.
	prefs[0].NameJa = "mutated"
	again := resolve.Prefectures()
	if again[0].NameJa != "北海道" {
		t.Error("Prefectures() should return a defensive copy")
	}
}
