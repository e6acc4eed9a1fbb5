package graphics

import "testing"

func TestRGBConstructors(t *testing.T) {
	if got := RGB(0xFF, 0x00, 0x00); got != Color(0xFFFF0000) {
		t.Errorf("RGB red: got %#x, want 0xFFFF0000", uint32(got))
	}
	if got := RGBA8(0x12, 0x34, 0x56, 0x78); got != Color(0x78123456) {
		t.Errorf("RGBA8: got %#x, want 0x78123456", uint32(got))
	}
	if got := RGBA(0, 0, 0, 1.0); got != Color(0xFF000000) {
		t.Errorf("RGBA full alpha: got %#x, want 0xFF000000", uint32(got))
	}
}

func TestColorIsSet(t *testing.T) {
	if ColorNone.IsSet() {
		t.Error("ColorNone should not be set")
	}
	if !RGB(1, 2, 3).IsSet() {
		t.Error("opaque color should be set")
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0x10, 0x20, 0x30).WithAlpha(0.5)
	if uint8(c>>24) != 0x80 {
		t.Errorf("alpha byte: got %#x, want 0x80", uint8(c>>24))
	}
	if uint32(c)&0x00FFFFFF != 0x102030 {
		t.Errorf("rgb bytes changed: got %#x", uint32(c)&0x00FFFFFF)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#FF0000", Color(0xFFFF0000), true},
		{"#80FF0000", Color(0x80FF0000), true},
		{"#abcdef", Color(0xFFABCDEF), true},
		{"FF0000", 0, false},
		{"#FF00", 0, false},
		{"#GG0000", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.ok && err != nil {
			t.Errorf("ParseColor(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseColor(%q): expected error", tt.in)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}
