package models

import (
	"fmt"
	"strconv"
	"strings"
)

var months = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// StringifyDates converts ISO expiration dates to their abbreviated
// display form, e.g. "2024-01-19" -> "Jan 19". A date that does not parse
// is passed through unchanged.
func StringifyDates(dates []string) []string {
	stringified := make([]string, 0, len(dates))
	for _, date := range dates {
		stringified = append(stringified, stringifyDate(date))
	}

	return stringified
}

func stringifyDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return date
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return date
	}

	return fmt.Sprintf("%s %d", months[month-1], day)
}
