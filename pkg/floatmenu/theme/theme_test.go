package theme

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", Default, false},
		{"system", Default, false},
		{"Dark", Dark, false},
		{" light ", Light, false},
		{"sepia", Default, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassName(t *testing.T) {
	if got := ClassName(Dark); got != "dark-theme" {
		t.Errorf("ClassName(Dark) = %q", got)
	}
	if got := ClassName(Light); got != "light-theme" {
		t.Errorf("ClassName(Light) = %q", got)
	}
	if got := ClassName(Default); got != "" {
		t.Errorf("ClassName(Default) = %q, want empty", got)
	}
}

func TestStylesForPanelHasFrame(t *testing.T) {
	for _, th := range []Theme{Default, Light, Dark} {
		s := StylesFor(th)
		if s.Panel.GetHorizontalFrameSize() == 0 {
			t.Errorf("%v: panel style has no horizontal frame", th)
		}
		if s.Panel.GetVerticalFrameSize() != 2 {
			t.Errorf("%v: panel vertical frame = %d, want 2", th, s.Panel.GetVerticalFrameSize())
		}
	}
}
