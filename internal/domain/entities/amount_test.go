package entities

import (
	"encoding/json"
	"testing"
)

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{name: "minor units integer", in: float64(4790), want: 47.90, ok: true},
		{name: "major units decimal", in: 19.90, want: 19.90, ok: true},
		{name: "threshold stays major", in: float64(100), want: 100, ok: true},
		{name: "small integer is major", in: float64(50), want: 50, ok: true},
		{name: "large decimal stays major", in: 150.5, want: 150.5, ok: true},
		{name: "json number", in: json.Number("12990"), want: 129.90, ok: true},
		{name: "numeric string", in: "4790", want: 47.90, ok: true},
		{name: "int", in: 4790, want: 47.90, ok: true},
		{name: "int64", in: int64(101), want: 1.01, ok: true},
		{name: "non numeric string", in: "abc", ok: false},
		{name: "empty string", in: " ", ok: false},
		{name: "nil", in: nil, ok: false},
		{name: "bool", in: true, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeAmount(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("NormalizeAmount(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	if got := ToMinorUnits(19.90); got != 1990 {
		t.Fatalf("expected 1990, got %d", got)
	}
	if got := ToMinorUnits(0.1 + 0.2); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := ToMinorUnits(47.905); got != 4791 {
		t.Fatalf("expected 4791, got %d", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(19.9); got != "19.90" {
		t.Fatalf("expected 19.90, got %s", got)
	}
	if got := FormatAmount(100); got != "100.00" {
		t.Fatalf("expected 100.00, got %s", got)
	}
}
