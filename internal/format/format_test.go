package format

import (
	"strings"
	"testing"
)

func TestScaleBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.00 B"},
		{999, "999.00 B"},
		{1000, "1.00 KB"},
		{1_500_000, "1.50 MB"},
		{8_000_000_000, "8.00 GB"},
		{2_500_000_000_000, "2.50 TB"},
		{5_000_000_000_000_000, "5000.00 TB"},
	}

	for _, tc := range tests {
		if got := ScaleBytes(tc.in); got != tc.want {
			t.Errorf("ScaleBytes(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFraction(t *testing.T) {
	if got := Fraction(500, 2000); got != "500.00 B/2.00 KB" {
		t.Fatalf("Fraction = %q", got)
	}
}

func TestUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m 0s"},
		{65, "1m 5s"},
		{3600, "1h 0m 0s"},
		{3661, "1h 1m 1s"},
		{86400, "1d 0h 0m 0s"},
		{90061, "1d 1h 1m 1s"},
		{10*86400 + 59, "10d 0h 0m 59s"},
	}

	for _, tc := range tests {
		if got := Uptime(tc.in); got != tc.want {
			t.Errorf("Uptime(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalColors(t *testing.T) {
	got := NormalColors()
	if !strings.HasPrefix(got, "\x1b[40m   \x1b[41m   ") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[47m   "+Reset) {
		t.Fatalf("unexpected suffix: %q", got)
	}
	if n := strings.Count(got, swatch); n != 8 {
		t.Fatalf("got %d blocks, want 8", n)
	}
}

func TestBrightColors(t *testing.T) {
	got := BrightColors()
	if !strings.HasPrefix(got, "\x1b[48;5;8m   ") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, "\x1b[48;5;15m   "+Reset) {
		t.Fatalf("missing last block: %q", got)
	}
	if n := strings.Count(got, "\x1b[48;5;"); n != 8 {
		t.Fatalf("got %d blocks, want 8", n)
	}
}

func TestPaletteSkipsOutOfRange(t *testing.T) {
	if got := Palette(5, 5); got != Reset {
		t.Fatalf("empty range = %q", got)
	}
	if got := Palette(-2, 1); got != "\x1b[40m   "+Reset {
		t.Fatalf("negative range = %q", got)
	}
	if got := Palette(255, 258); got != "\x1b[48;5;255m   "+Reset {
		t.Fatalf("upper range = %q", got)
	}
}
