package timecode

import "testing"

func TestMSToASS(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0:00:00.00"},
		{10, "0:00:00.01"},
		{999, "0:00:00.99"},
		{1000, "0:00:01.00"},
		{61500, "0:01:01.50"},
		{3600000, "1:00:00.00"},
		{3723450, "1:02:03.45"},
		// truncation, not rounding
		{3723456, "1:02:03.45"},
	}

	for _, tt := range tests {
		if got := MSToASS(tt.ms); got != tt.want {
			t.Errorf("MSToASS(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestASSToMS(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0:00:00.00", 0},
		{"0:00:01.00", 1000},
		{"0:01:01.50", 61500},
		{"1:02:03.45", 3723450},
		{"10:00:00.00", 36000000},
	}

	for _, tt := range tests {
		got, err := ASSToMS(tt.in)
		if err != nil {
			t.Errorf("ASSToMS(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ASSToMS(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestASSToMSInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"1:02:03",
		"1:02:03.45.6",
		"1:xx:03.45",
		"1::03.45",
		"1:02:03.",
	} {
		if _, err := ASSToMS(in); err == nil {
			t.Errorf("ASSToMS(%q) expected error", in)
		}
	}
}

// parsing what we format must return the original value for any
// centisecond-aligned input
func TestASSRoundTrip(t *testing.T) {
	for _, ms := range []int{0, 10, 500, 1000, 59990, 61500, 3599990, 3600000, 7323450} {
		got, err := ASSToMS(MSToASS(ms))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", ms, err)
		}
		if got != ms {
			t.Errorf("round trip of %d = %d", ms, got)
		}
	}
}

func TestMSToLRC(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "[00:00.00]"},
		{1000, "[00:01.00]"},
		{61500, "[01:01.50]"},
		{3723450, "[62:03.45]"},
	}

	for _, tt := range tests {
		if got := MSToLRC(tt.ms); got != tt.want {
			t.Errorf("MSToLRC(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestKValue(t *testing.T) {
	tests := []struct {
		ms   int
		want int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{10, 1},
		{14, 1},
		{15, 2},
		{500, 50},
		{505, 51},
		{-10, 0},
	}

	for _, tt := range tests {
		if got := KValue(tt.ms); got != tt.want {
			t.Errorf("KValue(%d) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}
