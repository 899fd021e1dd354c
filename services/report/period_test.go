package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildPeriodConfig(t *testing.T) {
	tests := []struct {
		name       string
		start, end *time.Time
		wantType   string
		wantKey    string
		wantYear   int
		wantMonth  *int
	}{
		{"single day", day(2024, 3, 5), day(2024, 3, 5), PeriodDay, "2024-03-05", 2024, nil},
		{"calendar month", day(2024, 2, 1), day(2024, 2, 29), PeriodMonth, "2024-02", 2024, intPtr(2)},
		{"calendar year", day(2023, 1, 1), day(2023, 12, 31), PeriodYear, "2023", 2023, nil},
		{"partial month", day(2024, 2, 1), day(2024, 2, 28), PeriodCustom, "custom:2024-02-01_to_2024-02-28", 2024, nil},
		{"cross month", day(2024, 1, 15), day(2024, 2, 15), PeriodCustom, "custom:2024-01-15_to_2024-02-15", 2024, nil},
		{"open end", day(2024, 1, 15), nil, PeriodCustom, "custom:2024-01-15_to_open", 2024, nil},
		{"open start", nil, day(2024, 2, 15), PeriodCustom, "custom:open_to_2024-02-15", 2024, nil},
		{"fully open", nil, nil, PeriodCustom, "custom:open_to_open", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := BuildPeriodConfig(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cfg.PeriodType)
			assert.Equal(t, tt.wantKey, cfg.PeriodKey)
			assert.Equal(t, tt.wantYear, cfg.Year)
			assert.Equal(t, tt.wantMonth, cfg.Month)
		})
	}
}

func TestBuildPeriodConfigIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 7, 9, 6, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 7, 9, 22, 15, 59, 0, time.UTC)

	cfg, err := BuildPeriodConfig(&morning, &evening)
	require.NoError(t, err)
	assert.Equal(t, PeriodDay, cfg.PeriodType)
	assert.Equal(t, "2024-07-09", cfg.PeriodKey)

	again, err := BuildPeriodConfig(&evening, &morning)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestBuildPeriodConfigRejectsZeroTime(t *testing.T) {
	var zero time.Time
	_, err := BuildPeriodConfig(&zero, day(2024, 1, 1))
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestParseReportDate(t *testing.T) {
	got, err := ParseReportDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, *day(2024, 2, 29), *got)

	got, err = ParseReportDate("2024-02-29T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 29, got.Day())

	got, err = ParseReportDate("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"2023-02-29", "2024-13-01", "29/02/2024", "yesterday"} {
		_, err := ParseReportDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestMonthPeriod(t *testing.T) {
	cfg, w := MonthPeriod(time.Date(2024, 2, 17, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, PeriodMonth, cfg.PeriodType)
	assert.Equal(t, "2024-02", cfg.PeriodKey)
	require.NotNil(t, w.Start)
	require.NotNil(t, w.End)
	assert.Equal(t, *day(2024, 2, 1), *w.Start)
	assert.Equal(t, 29, w.End.Day())
	assert.Equal(t, 23, w.End.Hour())
}

func TestDateWindowOverlaps(t *testing.T) {
	w := NewDateWindow(day(2024, 3, 1), day(2024, 3, 31))

	assert.True(t, w.Overlaps(*day(2024, 2, 25), *day(2024, 3, 2)))
	assert.True(t, w.Overlaps(*day(2024, 3, 31), *day(2024, 4, 3)))
	assert.False(t, w.Overlaps(*day(2024, 4, 1), *day(2024, 4, 3)))
	assert.False(t, w.Overlaps(*day(2024, 2, 1), *day(2024, 2, 29)))
	assert.True(t, DateWindow{}.Overlaps(*day(1999, 1, 1), *day(1999, 1, 2)))
}

func intPtr(v int) *int { return &v }
