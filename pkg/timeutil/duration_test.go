package timeutil

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "None"},
		{-5, "None"},
		{1, "< 1 minute"},
		{30, "< 1 minute"},
		{59, "< 1 minute"},
		{60, "1 minute"},
		{119, "1 minute"},
		{150, "2 minutes"},
		{3600, "1 hour"},
		{3660, "1 hour and 1 minute"},
		{3720, "1 hour and 2 minutes"},
		{7200, "2 hours"},
		{7260, "2 hours and 1 minute"},
		{7320, "2 hours and 2 minutes"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Fatalf("FormatSeconds(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
