package validation

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the on-disk and on-the-wire date format of the dataset.
const DateLayout = "2006-01-02"

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	s = strings.TrimSpace(s)
	if !dateShape.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsOrderedRange reports whether start <= end for two valid dates.
// Dates in DateLayout sort lexically, so a string compare is enough.
func IsOrderedRange(start, end string) bool {
	return strings.TrimSpace(start) <= strings.TrimSpace(end)
}
