package mise

import (
	"strconv"
	"strings"
)

// FormatDuration converts a compact ISO-8601 duration such as "PT1H30M" into
// English ("1 hour 30 minutes"). Only the hour and minute components are
// read; anything after the minutes marker is ignored.
//
// An empty input returns an empty string so callers can pick their own
// placeholder. A duration with no non-zero components returns
// PlaceholderCookingTime. Non-numeric components return EINVALID.
func FormatDuration(iso string) (string, error) {
	if iso == "" {
		return "", nil
	}

	rest := strings.TrimPrefix(iso, "PT")

	var hours, minutes int
	if before, after, found := strings.Cut(rest, "H"); found {
		n, err := strconv.Atoi(before)
		if err != nil {
			return "", Errorf(EINVALID, "invalid hours in duration %q", iso)
		}
		hours = n
		rest = after
	}
	if before, _, found := strings.Cut(rest, "M"); found {
		n, err := strconv.Atoi(before)
		if err != nil {
			return "", Errorf(EINVALID, "invalid minutes in duration %q", iso)
		}
		minutes = n
	}

	var parts []string
	if hours != 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes != 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	if len(parts) == 0 {
		return PlaceholderCookingTime, nil
	}
	return strings.Join(parts, " "), nil
}

func pluralize(n int, unit string) string {
	s := strconv.Itoa(n) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
