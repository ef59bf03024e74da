package term

import "testing"

func TestEnvSize(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows string
		wantW      uint16
		wantH      uint16
	}{
		{"both set", "132", "50", 132, 50},
		{"absent", "", "", DefaultWidth, DefaultHeight},
		{"unparsable", "wide", "tall", DefaultWidth, DefaultHeight},
		{"zero falls back", "0", "0", DefaultWidth, DefaultHeight},
		{"partial", "90", "", 90, DefaultHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.cols)
			t.Setenv("LINES", tt.rows)
			w, h := envSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("envSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSGRBytes(t *testing.T) {
	// The color sequences are a wire contract: byte-for-byte.
	tests := []struct {
		got  string
		want string
	}{
		{Foreground(255, 128, 0), "\x1b[38;2;255;128;0m"},
		{Foreground(0, 0, 0), "\x1b[38;2;0;0;0m"},
		{Background(30, 30, 46), "\x1b[48;2;30;30;46m"},
		{Reset, "\x1b[0m"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("sequence = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestMoveTo(t *testing.T) {
	if got := MoveTo(0, 0); got != "\x1b[1;1H" {
		t.Errorf("MoveTo(0,0) = %q, want ESC[1;1H", got)
	}
	if got := MoveTo(10, 4); got != "\x1b[5;11H" {
		t.Errorf("MoveTo(10,4) = %q, want ESC[5;11H", got)
	}
}
