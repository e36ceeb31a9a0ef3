package tabfmt

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"go", FormatGo, false},
		{"text", FormatText, false},
		{"Go", 0, true},
		{"", 0, true},
		{"csv", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	for f := Format(0); f < formatCount; f++ {
		back, err := ParseFormat(f.String())
		if err != nil || back != f {
			t.Errorf("ParseFormat(%v.String()) = %v, %v", f, back, err)
		}
	}
	if got := Format(9).String(); got != "Format(9)" {
		t.Errorf("Format(9).String() = %q", got)
	}
}
