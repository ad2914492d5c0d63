package alarm

import (
	"errors"
	"fmt"
)

// Pattern is a non-empty sequence of binary digits, one per alarm tick.
type Pattern string

// Built-in patterns of the countdown timer.
const (
	// ButtonPattern is a short chirp acknowledging a button press.
	ButtonPattern Pattern = "110"
	// HalfTimePattern is three long beeps at half-time.
	HalfTimePattern Pattern = "111000111000111000"
	// CountdownPattern is a double beep on each of the last five minutes.
	CountdownPattern Pattern = "1010"
	// FinalPattern loops while the time is up.
	FinalPattern Pattern = "111000"
)

var (
	// ErrEmptyPattern is returned when a pattern has no bits.
	ErrEmptyPattern = errors.New("alarm pattern is empty")
	// ErrInvalidPatternBit is returned when a pattern contains anything but '0' and '1'.
	ErrInvalidPatternBit = errors.New("alarm pattern bit must be '0' or '1'")
)

// ParsePattern validates s as a pattern.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return "", ErrEmptyPattern
	}

	for i, r := range s {
		if r != '0' && r != '1' {
			return "", fmt.Errorf("position %d (%q): %w", i, r, ErrInvalidPatternBit)
		}
	}

	return Pattern(s), nil
}

// MustParsePattern is like ParsePattern but panics on invalid input.
// It is meant for package-level constants.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the number of bits in the pattern.
func (p Pattern) Len() int {
	return len(p)
}

// Bit reports whether the i-th bit is high.
func (p Pattern) Bit(i int) bool {
	return p[i] == '1'
}
