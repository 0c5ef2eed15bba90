package dasher

import (
	"testing"

	"github.com/vovakirdan/tui-dasher/internal/config"
)

func TestLayerAdvance(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		dt       float64
		expected float64
	}{
		{"scrolls left", 0, 1, -20},
		{"stays within period", -400, 1, -420},
		{"wraps past a full copy", -500, 1, 0},
		{"wraps exactly at a full copy", -492, 1, 0},
		{"zero dt", -100, 0, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Layer{Speed: 20, Width: 256, Scale: 2, Offset: tc.offset}
			got := l.Advance(tc.dt)
			if got.Offset != tc.expected {
				t.Errorf("Advance(%v).Offset = %v, expected %v", tc.dt, got.Offset, tc.expected)
			}
		})
	}
}

func TestNewLayersFromDefaults(t *testing.T) {
	layers := NewLayers(config.DefaultDasherConfig().Parallax)
	if len(layers) != 3 {
		t.Fatalf("NewLayers() returned %d layers, expected 3", len(layers))
	}

	speeds := []float64{20, 40, 80}
	periods := []float64{512, 512, 704}
	for i, l := range layers {
		if l.Speed != speeds[i] {
			t.Errorf("layer %d Speed = %v, expected %v", i, l.Speed, speeds[i])
		}
		if l.Period() != periods[i] {
			t.Errorf("layer %d Period() = %v, expected %v", i, l.Period(), periods[i])
		}
		if l.Offset != 0 {
			t.Errorf("layer %d should start at offset 0, got %v", i, l.Offset)
		}
	}
}

func TestLayerOffsetStaysInPeriod(t *testing.T) {
	l := Layer{Speed: 80, Width: 352, Scale: 2}
	for i := 0; i < 5000; i++ {
		l = l.Advance(1.0 / 60.0)
		if l.Offset > 0 || l.Offset <= -l.Period() {
			t.Fatalf("step %d: Offset = %v outside (-%v, 0]", i, l.Offset, l.Period())
		}
	}
}
