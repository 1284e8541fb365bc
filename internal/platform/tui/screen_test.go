package tui

import (
	"strings"
	"sync"
	"testing"

	"github.com/dmfed/skirmish/internal/sim"
)

var testColor = sim.Color{R: 1, G: 0, B: 0}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@', testColor)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != testColor {
		t.Errorf("GetCell(3,2) = %+v", cell)
	}

	// Out of bounds writes are ignored, reads return blanks.
	s.Set(-1, 0, 'x', testColor)
	s.Set(10, 0, 'x', testColor)
	s.Set(0, 5, 'x', testColor)
	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("out-of-bounds read returned %q", c.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, '#', testColor)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != colorNone {
		t.Errorf("cell after Clear = %+v", c)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A', testColor)

	s.Resize(20, 10)
	if c := s.GetCell(2, 2); c.Rune != 'A' {
		t.Errorf("content lost on grow: %q", c.Rune)
	}

	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != 'A' {
		t.Errorf("content lost on shrink within bounds: %q", c.Rune)
	}
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 3x3", s.Width(), s.Height())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "hello", testColor)

	// Clipped at the right edge
	if c := s.GetCell(9, 1); c.Rune != 'l' {
		t.Errorf("GetCell(9,1) = %q, want 'l'", c.Rune)
	}
	if !strings.Contains(s.String(), "hel") {
		t.Errorf("screen missing clipped text:\n%s", s.String())
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawLine(0, 0, 4, 4, '*', testColor)

	for i := 0; i <= 4; i++ {
		if c := s.GetCell(i, i); c.Rune != '*' {
			t.Errorf("diagonal cell (%d,%d) = %q", i, i, c.Rune)
		}
	}

	// Degenerate line is a single cell.
	s.Clear()
	s.DrawLine(5, 5, 5, 5, 'o', testColor)
	if c := s.GetCell(5, 5); c.Rune != 'o' {
		t.Error("single-point line not drawn")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	// Reversed corners still draw a normalized box.
	s.DrawBox(6, 6, 2, 2, testColor)

	if s.GetCell(2, 2).Rune != '┌' || s.GetCell(6, 6).Rune != '┘' {
		t.Errorf("box corners wrong: %q %q", s.GetCell(2, 2).Rune, s.GetCell(6, 6).Rune)
	}
	if s.GetCell(4, 2).Rune != '─' || s.GetCell(2, 4).Rune != '│' {
		t.Errorf("box edges wrong: %q %q", s.GetCell(4, 2).Rune, s.GetCell(2, 4).Rune)
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := NewScreen(4, 1)
	s.Set(0, 0, 'a', testColor)
	s.Set(1, 0, 'b', testColor)
	s.Set(2, 0, 'c', colorNone)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") {
		t.Errorf("same-color run split apart: %q", out)
	}
	if !strings.Contains(out, "c ") {
		t.Errorf("default-color run missing: %q", out)
	}
}

func TestRenderScreenConcurrent(t *testing.T) {
	// Each SSH session renders from its own goroutine, so the style
	// cache must tolerate concurrent use. Distinct tints per goroutine
	// force cache misses on every worker.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := NewScreen(20, 5)
			tint := sim.Color{R: float64(n) * 0.2, G: 0.5, B: 0.9}
			for x := 0; x < 20; x++ {
				s.Set(x, 0, 'x', tint)
			}
			for range 50 {
				if out := RenderScreen(s); out == "" {
					t.Error("empty render output")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestChannelConversion(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{-0.5, 0},
		{1.5, 255},
		{0.5, 128},
	}
	for _, tc := range cases {
		if got := channel(tc.in); got != tc.want {
			t.Errorf("channel(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
