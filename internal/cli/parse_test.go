// Package cli provides command-line parsing helpers.
package cli

import (
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "hex with hash", in: "#ff0000", want: "#ff0000"},
		{name: "hex without hash", in: "336699", want: "#336699"},
		{name: "hex with alpha", in: "#00ff0080", want: "#00ff0080"},
		{name: "named", in: "red", want: "#ff0000"},
		{name: "named mixed case", in: "SteelBlue", want: "#4682b4"},
		{name: "named hex length", in: "tomato", want: "#ff6347"},
		{name: "garbage", in: "notacolour", wantErr: true},
		{name: "short hex", in: "#fff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColour(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.Hex() != tt.want {
				t.Errorf("parseColour(%q) = %s, want %s", tt.in, got.Hex(), tt.want)
			}
		})
	}
}

func TestSpaceValue(t *testing.T) {
	v := newSpaceValue("lab")
	if err := v.Set("hsluv"); err != nil {
		t.Fatalf("Set(hsluv) error = %v", err)
	}
	if v.String() != "hsluv" {
		t.Errorf("String() = %s, want hsluv", v.String())
	}
	if err := v.Set("bogus"); err == nil {
		t.Error("Set(bogus) should fail")
	}
}
