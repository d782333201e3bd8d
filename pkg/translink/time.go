package translink

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseDotNetTime extracts the milliseconds-since-epoch value from the WCF
// style timestamps OPIA emits, e.g. "/Date(1464961260000+1000)/".
//
// The value is taken between the "(" and the first "+", so a negative
// timezone offset would not parse. OPIA only ever reports Queensland time
// (+1000) so this matches the service in practice.
func parseDotNetTime(value string) (int64, error) {
	open := strings.Index(value, "(")
	plus := strings.Index(value, "+")

	if open == -1 || plus == -1 || plus <= open+1 {
		return 0, fmt.Errorf("%w: unparseable timestamp %q", ErrMalformedResponse, value)
	}

	millis, err := strconv.ParseInt(value[open+1:plus], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable timestamp %q", ErrMalformedResponse, value)
	}

	return millis, nil
}

// formatPlanTime renders a reference time in the fixed-width form the plan
// call expects: MM/DD/YYYY H:mm:ss in local time. Month, day, minute and
// second are zero padded to two digits. The hour is not - that quirk is part
// of the accepted format.
func formatPlanTime(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d %d:%02d:%02d",
		int(t.Month()), t.Day(), t.Year(),
		t.Hour(), t.Minute(), t.Second())
}
