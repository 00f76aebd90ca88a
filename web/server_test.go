package web

import (
	"testing"
	"time"
)

func TestPctFormatter(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{p: 0.0, want: ".000"},
		{p: 0.4, want: ".400"},
		{p: 0.503, want: ".503"},
		{p: 0.75, want: ".750"},
		{p: 2.0 / 3.0, want: ".667"},
		{p: 1.0, want: "1.000"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := pctFormatter(tc.p)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestDiffFormatter(t *testing.T) {
	tests := []struct {
		d    float64
		want string
	}{
		{d: 105.0, want: "+105.0"},
		{d: -40.5, want: "-40.5"},
		{d: 0.0, want: "+0.0"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := diffFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestDateFormatter(t *testing.T) {
	tests := []struct {
		d    time.Time
		want string
	}{
		{d: time.Time{}, want: "Never"},
		{d: time.Date(2026, 1, 5, 19, 30, 0, 0, time.UTC), want: "2026-01-05"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := dateFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestUpdatedFormatter(t *testing.T) {
	tests := []struct {
		d    time.Time
		want string
	}{
		{d: time.Time{}, want: "Never"},
		{d: time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC), want: "Jan 5, 2026 6:00 AM UTC"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := updatedFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
