package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidTimeError indicates a string that does not parse as "HH:MM".
type InvalidTimeError struct {
	Value string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM", e.Value)
}

// ToNumber converts an "HH:MM" string to hours on a 24h numeric clock,
// e.g. "09:30" -> 9.5
func ToNumber(t string) (float64, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, &InvalidTimeError{Value: t}
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, &InvalidTimeError{Value: t}
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &InvalidTimeError{Value: t}
	}
	return float64(h) + float64(m)/60, nil
}

// Within reports whether t falls in the half-open interval [start, end).
// A time equal to start is inside; a time equal to end is not.
func Within(t, start, end string) (bool, error) {
	tn, err := ToNumber(t)
	if err != nil {
		return false, err
	}
	sn, err := ToNumber(start)
	if err != nil {
		return false, err
	}
	en, err := ToNumber(end)
	if err != nil {
		return false, err
	}
	return tn >= sn && tn < en, nil
}
