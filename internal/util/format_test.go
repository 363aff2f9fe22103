package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.5h", FormatHours(1.5))
	assert.Equal(t, "0.0h", FormatHours(0))
	assert.Equal(t, "22.5h", FormatHours(22.5))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "24h 0m", FormatMinutes(1440))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2h 15m", FormatDuration(2*time.Hour+15*time.Minute))
}

func TestTimeProviderToday(t *testing.T) {
	tp := &TimeProvider{}
	assert.NoError(t, tp.SetTimezone("UTC"))
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), tp.Today())

	assert.Error(t, tp.SetTimezone("Not/AZone"))
}
