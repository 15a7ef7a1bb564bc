// Package input extracts numbers and words from puzzle input lines.
package input

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ErrRange is returned when a number doesn't fit the requested type.
var ErrRange = errors.New("value out of range")

var (
	numberRe = regexp.MustCompile(`-?\d+`)
	wordRe   = regexp.MustCompile(`[[:alpha:]]+`)
)

// Numbers returns every optionally negative decimal integer in s, in order.
// Anything between numbers is ignored, so "<1, 3*-4>" yields 1, 3 and -4.
//
// An error is returned if a number doesn't fit in N, including negative numbers
// for unsigned N.
func Numbers[N constraints.Integer](s string) ([]N, error) {
	matches := numberRe.FindAllString(s, -1)
	out := make([]N, 0, len(matches))
	for _, m := range matches {
		n, err := parseInteger[N](m)
		if err != nil {
			return nil, fmt.Errorf("converting %q from %q: %w", m, s, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseInteger[N constraints.Integer](s string) (N, error) {
	var zero N
	if signed := ^zero < 0; signed {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, rangeError(err)
		}
		if n := N(v); int64(n) == v {
			return n, nil
		}
		return 0, ErrRange
	}

	if len(s) > 0 && s[0] == '-' {
		return 0, ErrRange
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, rangeError(err)
	}
	if n := N(v); uint64(n) == v {
		return n, nil
	}
	return 0, ErrRange
}

func rangeError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}
	return err
}

// Words returns every run of ASCII letters in s, in order.
func Words(s string) []string {
	return wordRe.FindAllString(s, -1)
}
