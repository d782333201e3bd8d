package translink

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDotNetTime(t *testing.T) {
	millis, err := parseDotNetTime("/Date(1464961260000+1000)/")
	require.NoError(t, err)
	assert.Equal(t, int64(1464961260000), millis)
}

func TestParseDotNetTimeRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"/Date(1464961260000)/",
		"/Date(+1000)/",
		// Negative offsets are a known limitation of the accepted format -
		// the service only ever reports +1000.
		"/Date(1464961260000-1000)/",
	}

	for _, input := range inputs {
		_, err := parseDotNetTime(input)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("parseDotNetTime(%q) error = %v, want ErrMalformedResponse", input, err)
		}
	}
}

func TestFormatPlanTimePadsFields(t *testing.T) {
	zone := time.FixedZone("AEST", 10*60*60)

	// Month, day, minute and second pad to two digits, the hour does not.
	assert.Equal(t, "06/03/2016 9:05:07", formatPlanTime(time.Date(2016, 6, 3, 9, 5, 7, 0, zone)))
	assert.Equal(t, "05/24/2016 16:27:00", formatPlanTime(time.Date(2016, 5, 24, 16, 27, 0, 0, zone)))
	assert.Equal(t, "12/31/2016 0:00:09", formatPlanTime(time.Date(2016, 12, 31, 0, 0, 9, 0, zone)))
}

func TestFormatPlanTimeFromUnixSeconds(t *testing.T) {
	zone := time.FixedZone("AEST", 10*60*60)

	assert.Equal(t, "06/03/2016 23:37:30", formatPlanTime(time.Unix(1464961050, 0).In(zone)))
}
