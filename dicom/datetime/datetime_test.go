package datetime_test

import (
	"testing"
	"time"

	"github.com/codeninja55/go-dcmx/dicom/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		year      int
		month     time.Month
		day       int
	}{
		{"valid date", "20230115", false, 2023, time.January, 15},
		{"leap day", "20240229", false, 2024, time.February, 29},
		{"non-leap Feb 29", "20230229", true, 0, 0, 0},
		{"month 13", "20231315", true, 0, 0, 0},
		{"day zero", "20230100", true, 0, 0, 0},
		{"too short", "2023011", true, 0, 0, 0},
		{"too long", "202301155", true, 0, 0, 0},
		{"non-digit", "2023011X", true, 0, 0, 0},
		{"empty", "", true, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := datetime.ParseDate(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, datetime.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.year, d.Year)
			assert.Equal(t, tc.month, d.Month)
			assert.Equal(t, tc.day, d.Day)
			assert.Equal(t, tc.input, d.String())
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		precision datetime.Precision
	}{
		{"hour only", "14", false, datetime.PrecisionHour},
		{"hour minute", "1430", false, datetime.PrecisionMinute},
		{"full seconds", "143059", false, datetime.PrecisionSecond},
		{"one fraction digit", "143059.5", false, datetime.PrecisionFraction},
		{"six fraction digits", "143059.123456", false, datetime.PrecisionFraction},
		{"leap second", "235960", false, datetime.PrecisionSecond},
		{"hour 24", "24", true, 0},
		{"minute 60", "1460", true, 0},
		{"fraction without seconds", "1430.5", true, 0},
		{"seven fraction digits", "143059.1234567", true, 0},
		{"colon form rejected", "14:30:59", true, 0},
		{"odd length", "143", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm, err := datetime.ParseTime(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.precision, tm.Precision)
		})
	}
}

func TestTime_StringPreservesPrecision(t *testing.T) {
	tm, err := datetime.ParseTime("1430")
	require.NoError(t, err)
	assert.Equal(t, "1430", tm.String())

	tm, err = datetime.ParseTime("143059.120000")
	require.NoError(t, err)
	assert.Equal(t, "143059.120000", tm.String())
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"year only", "2023", false},
		{"year month", "202301", false},
		{"full date", "20230115", false},
		{"date hour", "2023011514", false},
		{"full datetime", "20230115143059", false},
		{"with fraction", "20230115143059.123456", false},
		{"with positive offset", "20230115143059+1000", false},
		{"with negative offset", "20230115143059.5-0430", false},
		{"offset alone on date", "20230115+0200", false},
		{"bad offset length", "20230115+02", true},
		{"offset hours out of range", "20230115+1500", true},
		{"five digit date", "20231", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dt, err := datetime.ParseDateTime(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, dt.String(), "DT must re-format exactly as read")
		})
	}
}

func TestParseDateTime_Components(t *testing.T) {
	dt, err := datetime.ParseDateTime("20230115143059.5-0430")
	require.NoError(t, err)
	assert.Equal(t, 2023, dt.Date.Year)
	assert.Equal(t, time.January, dt.Date.Month)
	assert.Equal(t, 15, dt.Date.Day)
	assert.True(t, dt.HasTime)
	assert.Equal(t, 14, dt.Time.Hour)
	assert.Equal(t, 500000, dt.Time.Microsecond)
	assert.True(t, dt.HasOffset)
	assert.Equal(t, -270, dt.Offset)
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		count     int
		unit      datetime.AgeUnit
		days      int
	}{
		{"years", "045Y", false, 45, datetime.AgeYears, 45 * 365},
		{"months", "006M", false, 6, datetime.AgeMonths, 180},
		{"weeks", "012W", false, 12, datetime.AgeWeeks, 84},
		{"days", "100D", false, 100, datetime.AgeDays, 100},
		{"zero age", "000D", false, 0, datetime.AgeDays, 0},
		{"lowercase unit", "045y", true, 0, 0, 0},
		{"missing unit", "0456", true, 0, 0, 0},
		{"too short", "45Y", true, 0, 0, 0},
		{"too long", "0045Y", true, 0, 0, 0},
		{"non-digit count", "04xY", true, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			age, err := datetime.ParseAge(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, datetime.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.count, age.Count)
			assert.Equal(t, tc.unit, age.Unit)
			assert.Equal(t, tc.days, age.Days())
			assert.Equal(t, tc.input, age.String())
		})
	}
}
