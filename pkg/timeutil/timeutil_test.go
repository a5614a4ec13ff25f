package timeutil

import "testing"

func TestToNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"00:00", 0},
		{"09:00", 9},
		{"09:30", 9.5},
		{"09:45", 9.75},
		{"23:00", 23},
	}

	for _, c := range cases {
		got, err := ToNumber(c.in)
		if err != nil {
			t.Errorf("ToNumber(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ToNumber(%q) = %f, want %f", c.in, got, c.want)
		}
		if got < 0 || got >= 24 {
			t.Errorf("ToNumber(%q) = %f, outside [0, 24)", c.in, got)
		}
	}
}

func TestToNumber_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "09:00:00", "nine:00", "09:xx", "09-00"} {
		if _, err := ToNumber(in); err == nil {
			t.Errorf("ToNumber(%q) expected error, got none", in)
		}
	}
}

func TestWithin_HalfOpen(t *testing.T) {
	cases := []struct {
		time, start, end string
		want             bool
	}{
		{"09:00", "09:00", "10:00", true},  // start is inside
		{"10:00", "09:00", "10:00", false}, // end is outside
		{"09:30", "09:00", "10:00", true},
		{"08:59", "09:00", "10:00", false},
		{"13:00", "09:00", "13:00", false},
	}

	for _, c := range cases {
		got, err := Within(c.time, c.start, c.end)
		if err != nil {
			t.Fatalf("Within(%q, %q, %q) returned error: %v", c.time, c.start, c.end, err)
		}
		if got != c.want {
			t.Errorf("Within(%q, %q, %q) = %v, want %v", c.time, c.start, c.end, got, c.want)
		}
	}
}

func TestWithin_InvalidTime(t *testing.T) {
	if _, err := Within("bad", "09:00", "10:00"); err == nil {
		t.Error("Within with malformed time expected error, got none")
	}
}
