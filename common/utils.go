package common

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// emailPattern matches local-part@domain.tld with a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ParseInt64 converts text to an integer, returning def when the text is not
// numeric. When min or max is non-nil the result is clamped to that bound even
// if parsing succeeded: out-of-range input is corrected, not rejected.
func ParseInt64(text string, def int64, min, max *int64) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		value = def
	}
	if min != nil && value < *min {
		value = *min
	}
	if max != nil && value > *max {
		value = *max
	}
	return value
}

// Int64Ptr returns a pointer to v, for use as a ParseInt64 bound.
func Int64Ptr(v int64) *int64 {
	return &v
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing literal "Z" is
// accepted as the canonical UTC offset. Empty or malformed input yields
// ok=false rather than an error.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractEmails scans free text for email addresses and returns the unique
// matches, lexicographically sorted and joined by ", ". Returns the empty
// string when no address is found.
func ExtractEmails(text string) string {
	if text == "" {
		return ""
	}
	matches := emailPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(matches))
	unique := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			unique = append(unique, m)
		}
	}
	sort.Strings(unique)
	return strings.Join(unique, ", ")
}

// GenerateRunID generates a unique identifier for a single scan run, used to
// correlate log lines belonging to the same run.
func GenerateRunID() string {
	return uuid.NewString()
}
