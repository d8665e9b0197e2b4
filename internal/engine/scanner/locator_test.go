package scanner

import "testing"

func TestSegmentLocator(t *testing.T) {
	tests := []struct {
		width int
		in    string
		want  string
	}{
		{2, "A_0", "A"},
		{2, "-123456#2_1", "-123456#2"},
		{2, "_0", ""},
		{2, "x", ""},
		{3, "edge_12", "edge"},
		{0, "edge_1", "edge_1"},
		{-1, "edge_1", "edge_1"},
		{2, "straße_0", "straße"},
		// Decomposed "é" is composed before the suffix is cut.
		{2, "cafe\u0301_1", "caf\u00e9"},
		{2, "\xffX_0", "\xffX"},
		{1, "A\xfe", "A"},
	}

	for _, tt := range tests {
		if got := SegmentLocator(tt.width)(tt.in); got != tt.want {
			t.Errorf("SegmentLocator(%d)(%q) = %q, want %q", tt.width, tt.in, got, tt.want)
		}
	}
}

func TestLaneLocator(t *testing.T) {
	if got := LaneLocator()("cafe\u0301_1"); got != "caf\u00e9_1" {
		t.Errorf("LaneLocator() = %q, want NFC form", got)
	}
	if got := LaneLocator()("A_0"); got != "A_0" {
		t.Errorf("LaneLocator() = %q, want A_0", got)
	}
}

func TestSegmentLocatorKeepsInvalidBytes(t *testing.T) {
	loc := SegmentLocator(DefaultSuffixWidth)
	a, b := loc("\xffX_0"), loc("\xfeX_0")
	if a == b {
		t.Errorf("distinct lanes merged into %q", a)
	}
	if a != "\xffX" || b != "\xfeX" {
		t.Errorf("got %q and %q, want original bytes", a, b)
	}
	if got := LaneLocator()("\xffX_0"); got != "\xffX_0" {
		t.Errorf("LaneLocator() = %q, want id unchanged", got)
	}
}
