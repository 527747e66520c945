package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses input either as a Go duration string ("2h30m",
// "45s") or, for a bare integer, as a number of minutes.
func ParseDuration(input string) (time.Duration, error) {
	if minutes, err := strconv.Atoi(input); err == nil {
		return time.Duration(minutes) * time.Minute, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", input)
	}
	return duration, nil
}
