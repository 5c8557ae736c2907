package colour

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSwatch(t *testing.T) {
	got := Swatch(RGB{R: 255, G: 0, B: 0, A: 1}, 2)
	want := "\033[48;2;255;0;0m  \033[0m"
	if got != want {
		t.Errorf("Swatch() = %q, want %q", got, want)
	}
}

func TestSwatchDefaultWidth(t *testing.T) {
	got := Swatch(Black, 0)
	want := "\033[48;2;0;0;0m        \033[0m"
	if got != want {
		t.Errorf("Swatch() = %q, want %q", got, want)
	}
}

func TestSwatchWithText(t *testing.T) {
	tests := []struct {
		name  string
		bg    RGB
		text  string
		width int
		want  string
	}{
		{
			name:  "dark text on light background",
			bg:    RGB{R: 255, G: 255, B: 255, A: 1},
			text:  "ab",
			width: 4,
			want:  "\033[48;2;255;255;255m\033[38;2;0;0;0m ab \033[0m",
		},
		{
			name:  "light text on dark background",
			bg:    RGB{R: 0, G: 0, B: 128, A: 1},
			text:  "x",
			width: 1,
			want:  "\033[48;2;0;0;128m\033[38;2;255;255;255mx\033[0m",
		},
		{
			name:  "text truncated",
			bg:    Black,
			text:  "abcdef",
			width: 3,
			want:  "\033[48;2;0;0;0m\033[38;2;255;255;255mabc\033[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SwatchWithText(tt.bg, tt.text, tt.width); got != tt.want {
				t.Errorf("SwatchWithText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	white := RGB{R: 255, G: 255, B: 255, A: 1}

	if got := ContrastRatio(Black, white); math.Abs(got-21) > 0.01 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Errorf("ContrastRatio(white, white) = %v, want 1", got)
	}
	if got := Luminance(white); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
}

func TestRGBImplementsColor(t *testing.T) {
	var c color.Color = RGB{R: 255, G: 127.6, B: -4, A: 1}

	got := color.RGBAModel.Convert(c).(color.RGBA)
	want := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("RGBAModel.Convert() = %v, want %v", got, want)
	}
}

func TestNearestName(t *testing.T) {
	tests := []struct {
		name      string
		c         RGB
		wantName  string
		wantExact bool
	}{
		{name: "exact red", c: RGB{R: 255, G: 0, B: 0, A: 1}, wantName: "red", wantExact: true},
		{name: "near red", c: RGB{R: 254, G: 1, B: 1, A: 1}, wantName: "red", wantExact: false},
		{name: "tie resolves alphabetically", c: RGB{R: 0, G: 255, B: 255, A: 1}, wantName: "aqua", wantExact: true},
		{name: "alpha ignored", c: RGB{R: 0, G: 0, B: 0, A: 0}, wantName: "black", wantExact: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, exact := NearestName(tt.c)
			if name != tt.wantName || exact != tt.wantExact {
				t.Errorf("NearestName() = (%q, %v), want (%q, %v)", name, exact, tt.wantName, tt.wantExact)
			}
		})
	}
}

func TestSupportsANSI(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	tests := []struct {
		name    string
		noColor string
		term    string
	}{
		{name: "regular file", noColor: "", term: "xterm-256color"},
		{name: "NO_COLOR set", noColor: "1", term: "xterm-256color"},
		{name: "dumb terminal", noColor: "", term: "dumb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)

			if SupportsANSI(f.Fd()) {
				t.Error("SupportsANSI() = true, want false")
			}
		})
	}
}
