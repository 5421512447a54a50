package ui

import (
	"image/color"
	"testing"

	"go-prevent/internal/config"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tc := range tests {
		if got := toRoman(tc.in); got != tc.want {
			t.Errorf("toRoman(%d): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestWaveIndicator_Label(t *testing.T) {
	w := NewWaveIndicator(0, 0, nil)
	if got := w.Label(3, 5); got != "III/V" {
		t.Errorf("expected III/V, got %q", got)
	}
	if got := w.Label(0, 5); got != "" {
		t.Errorf("expected empty label before the first wave, got %q", got)
	}
}

func TestLivesColor(t *testing.T) {
	tests := []struct {
		name            string
		j, lives, total int
		want            color.RGBA
	}{
		{"empty slot", 15, 12, 20, config.LivesEmptyColor},
		{"surplus above half", 0, 12, 20, config.LivesHighColor},
		{"last surplus", 1, 12, 20, config.LivesHighColor},
		{"within half", 2, 12, 20, config.LivesLowColor},
		{"at half", 0, 10, 20, config.LivesLowColor},
	}
	for _, tc := range tests {
		if got := livesColor(tc.j, tc.lives, tc.total); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestSpeedButton(t *testing.T) {
	b := NewSpeedButton(100, 50, 10, nil)
	want := []int{1, 2, 4, 1}
	for i, w := range want {
		if got := b.Multiplier(); got != w {
			t.Errorf("step %d: expected %dx, got %dx", i, w, got)
		}
		b.ToggleState()
	}

	tests := []struct {
		x, y int
		hit  bool
	}{
		{100, 50, true},
		{114, 50, true},
		{116, 50, false},
		{100, 20, false},
	}
	for _, tc := range tests {
		if got := b.IsClicked(tc.x, tc.y); got != tc.hit {
			t.Errorf("IsClicked(%d,%d): expected %v, got %v", tc.x, tc.y, tc.hit, got)
		}
	}
}

func TestPauseButton_IsClicked(t *testing.T) {
	b := NewPauseButton(20, 20, 8)
	if !b.IsClicked(22, 18) {
		t.Error("expected a hit near the center")
	}
	if b.IsClicked(40, 20) {
		t.Error("expected a miss outside the button")
	}
}
