package assets

import (
	"image/color"
	"testing"
)

func TestLoadNeighborhood(t *testing.T) {
	n, err := LoadNeighborhood(NeighborhoodPath)
	if err != nil {
		t.Fatalf("LoadNeighborhood() error = %v", err)
	}

	if n.Width != 960 || n.Height != 544 {
		t.Errorf("size = %dx%d, want 960x544", n.Width, n.Height)
	}
	if len(n.Houses) != 4 {
		t.Fatalf("got %d houses, want 4", len(n.Houses))
	}
	for i := 1; i < len(n.Houses); i++ {
		if n.Houses[i-1].X > n.Houses[i].X {
			t.Errorf("houses not sorted by x at %d", i)
		}
	}
	first := n.Houses[0]
	if first.Wall != (color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}) {
		t.Errorf("first house wall = %v", first.Wall)
	}
	if first.Windows != 2 {
		t.Errorf("first house windows = %d, want 2", first.Windows)
	}
	if len(n.Trees) != 3 {
		t.Errorf("got %d trees, want 3", len(n.Trees))
	}

	tests := []struct {
		mark string
		want float64
	}{
		{"left", 192},
		{"center", 480},
		{"right", 768},
	}
	for _, tt := range tests {
		if x, ok := n.Mark(tt.mark); !ok || x != tt.want {
			t.Errorf("Mark(%q) = %v, %v; want %v", tt.mark, x, ok, tt.want)
		}
	}
}

func TestLoadNeighborhoodMissing(t *testing.T) {
	if _, err := LoadNeighborhood("maps/missing.tmx"); err == nil {
		t.Error("expected an error for a missing map")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#336699", color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, false},
		{"", color.RGBA{A: 0xff}, false},
		{"blue", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
