package movemode

import (
	"testing"

	"github.com/1broseidon/retrodesk/internal/geom"
)

func TestNavigateWindow(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		dir      Direction
		count    int
		expected int
	}{
		{"next from 0", 0, DirDown, 3, 1},
		{"next from 2", 2, DirDown, 3, 0}, // wrap
		{"prev from 0", 0, DirUp, 3, 2},   // wrap
		{"prev from 1", 1, DirUp, 3, 0},
		{"right acts as next", 0, DirRight, 3, 1},
		{"left acts as prev", 0, DirLeft, 3, 2},
		{"single window", 0, DirDown, 1, 0},
		{"zero count", 0, DirDown, 0, 0},
		{"stale index", 7, DirDown, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NavigateWindow(tt.current, tt.dir, tt.count)
			if got != tt.expected {
				t.Errorf("NavigateWindow(%d, %v, %d) = %d, want %d",
					tt.current, tt.dir, tt.count, got, tt.expected)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Direction
		ok   bool
	}{
		{"up", DirUp, true},
		{"k", DirUp, true},
		{"down", DirDown, true},
		{"j", DirDown, true},
		{"left", DirLeft, true},
		{"h", DirLeft, true},
		{"right", DirRight, true},
		{"l", DirRight, true},
		{"enter", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	step := geom.Size{Width: 8, Height: 16}
	tests := []struct {
		dir  Direction
		want geom.Point
	}{
		{DirUp, geom.Point{Y: -16}},
		{DirDown, geom.Point{Y: 16}},
		{DirLeft, geom.Point{X: -8}},
		{DirRight, geom.Point{X: 8}},
	}
	for _, tt := range tests {
		if got := tt.dir.Delta(step); got != tt.want {
			t.Errorf("Delta(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseMoving.String() != "moving" || PhaseResizing.String() != "resizing" {
		t.Fatalf("unexpected phase names %q %q", PhaseMoving, PhaseResizing)
	}
	if PhaseSelecting.Grabbed() || !PhaseResizing.Grabbed() {
		t.Fatal("Grabbed() mismatch")
	}
}
