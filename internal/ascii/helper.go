// Package ascii provides formatting and parsing helpers for the fixed-width,
// comma-delimited ASCII fields used by the controller protocol.
package ascii

import (
	"fmt"
	"strconv"
)

// FormatInt formats v as a zero-padded decimal string of the given width.
// The protocol demands fixed digit counts for some arguments, e.g. a 3-digit
// program number where 7 is sent as "007".
//
// A value wider than width is returned unpadded; width validation belongs to
// the caller.
func FormatInt(v int, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}

// ParseInt parses a decimal token into an int.
func ParseInt(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("ascii: invalid integer token %q: %w", token, err)
	}

	return v, nil
}

// ParseBool parses a "0"/"1" flag token into a bool.
//
// Any token other than "0" or "1" is rejected; the protocol never sends
// textual booleans.
func ParseBool(token string) (bool, error) {
	switch token {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("ascii: invalid boolean token %q, want 0 or 1", token)
	}
}

// AppendFloats parses every token as a float64 and appends the values to target.
//
// strconv.ParseFloat accepts only the decimal-point form, which keeps the
// parse locale-invariant; a comma decimal separator would collide with the
// field delimiter anyway.
func AppendFloats(target []float64, tokens []string) ([]float64, error) {
	for _, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("ascii: invalid float token %q: %w", token, err)
		}
		target = append(target, v)
	}

	return target, nil
}
