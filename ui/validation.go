package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePositiveFloat parses a string as a float and validates it is positive.
// Returns an error naming the field if parsing fails or the value is not > 0.
func parsePositiveFloat(s, fieldName string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", fieldName)
	}

	if val <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %g", fieldName, val)
	}

	return val, nil
}
