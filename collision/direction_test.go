package collision

import "testing"

func TestParseDirections(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", DirNone, false},
		{"none", DirNone, false},
		{"all", DirAll, false},
		{"left", DirLeft, false},
		{"Top, bottom", DirUp | DirDown, false},
		{"left,right,up", DirLeft | DirRight | DirUp, false},
		{"sideways", DirNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirections(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		in, want Direction
	}{
		{DirLeft, DirRight},
		{DirUp, DirDown},
		{DirLeft | DirUp, DirRight | DirDown},
		{DirAll, DirAll},
		{DirNone, DirNone},
	}
	for _, tt := range tests {
		if got := tt.in.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if got := (DirLeft | DirDown).String(); got != "left,down" {
		t.Errorf("got %q", got)
	}
	if got := DirNone.String(); got != "none" {
		t.Errorf("got %q", got)
	}
	if got := ResponseBounce.String(); got != "bounce" {
		t.Errorf("got %q", got)
	}
}
