package filter

import (
	"reflect"
	"testing"
)

func TestGenCodes(t *testing.T) {
	tests := []struct {
		start, end string
		want       []string
	}{
		{"D43", "D49", []string{"D43", "D44", "D45", "D46", "D47", "D48", "D49"}},
		{"A99", "B01", []string{"A99", "B00", "B01"}},
		{"C01", "C01", []string{"C01"}},
	}

	for _, tt := range tests {
		t.Run(tt.start+".."+tt.end, func(t *testing.T) {
			got := GenCodes(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenCodes(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestECO_ShouldSkip(t *testing.T) {
	e := NewECO("D43", "D49")

	e.StartPGN()
	e.Header("ECO", "D45")
	if e.ShouldSkip() {
		t.Error("D45 should be admitted within D43..D49")
	}

	e.StartPGN()
	e.Header("ECO", "E01")
	if !e.ShouldSkip() {
		t.Error("E01 should be rejected outside D43..D49")
	}

	e.StartPGN()
	if !e.ShouldSkip() {
		t.Error("missing ECO tag should be rejected")
	}
}
