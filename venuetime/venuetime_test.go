package venuetime_test

import (
	"testing"
	"time"

	"github.com/hanksha/venue-booking-backend/venuetime"
	"github.com/stretchr/testify/require"
)

func newNormalizer(t *testing.T) *venuetime.Normalizer {
	t.Helper()

	n, err := venuetime.New("America/New_York")
	require.NoError(t, err)

	return n
}

func TestToAbsoluteUsesOffsetOfTheDay(t *testing.T) {
	n := newNormalizer(t)

	tests := []struct {
		date    string
		minutes int
		want    time.Time
	}{
		{"2024-01-15", 120, time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC)},
		{"2024-07-01", 120, time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)},
		{"2024-07-01", 18 * 60, time.Date(2024, 7, 1, 22, 0, 0, 0, time.UTC)},
		// 02:00 does not exist on the spring-forward day, it moves to 03:00 EDT
		{"2024-03-10", 120, time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)},
		{"2024-03-10", 60, time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)},
		{"2024-03-10", 180, time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)},
		{"2024-03-10", 18 * 60, time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)},
		// fall-back day: 02:00 is already EST
		{"2024-11-03", 120, time.Date(2024, 11, 3, 7, 0, 0, 0, time.UTC)},
		{"2024-11-03", 18 * 60, time.Date(2024, 11, 3, 23, 0, 0, 0, time.UTC)},
		// 01:30 happens twice, the first (EDT) one wins
		{"2024-11-03", 90, time.Date(2024, 11, 3, 5, 30, 0, 0, time.UTC)},
		// closing at midnight rolls into the next day
		{"2024-07-01", 24 * 60, time.Date(2024, 7, 2, 4, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := n.ToAbsolute(tt.date, tt.minutes)

		require.NoError(t, err)
		require.True(t, tt.want.Equal(got), "%s +%d: want %s got %s", tt.date, tt.minutes, tt.want, got.UTC())
	}
}

func TestDSTDaysDoNotShareAnOffset(t *testing.T) {
	n := newNormalizer(t)

	march, err := n.ToAbsolute("2024-03-10", 18*60)
	require.NoError(t, err)

	november, err := n.ToAbsolute("2024-11-03", 18*60)
	require.NoError(t, err)

	_, marchOffset := march.Zone()
	_, novemberOffset := november.Zone()

	require.Equal(t, -4*3600, marchOffset)
	require.Equal(t, -5*3600, novemberOffset)
}

func TestFromAbsoluteRoundTrip(t *testing.T) {
	n := newNormalizer(t)

	for _, date := range []string{"2024-03-10", "2024-06-15", "2024-11-03", "2024-12-31"} {
		for minutes := 10 * 60; minutes < 23*60; minutes += 30 {
			abs, err := n.ToAbsolute(date, minutes)
			require.NoError(t, err)

			gotDate, gotMinutes := n.FromAbsolute(abs)
			require.Equal(t, date, gotDate)
			require.Equal(t, minutes, gotMinutes)
		}
	}
}

func TestToAbsoluteRejectsBadDates(t *testing.T) {
	n := newNormalizer(t)

	for _, date := range []string{"", "2024-02-30", "2024-1-05", "05/01/2024", "2024-06-01T10:00:00Z"} {
		_, err := n.ToAbsolute(date, 600)
		require.Error(t, err, date)
	}
}

func TestParseClock(t *testing.T) {
	minutes, err := venuetime.ParseClock("18:30")
	require.NoError(t, err)
	require.Equal(t, 18*60+30, minutes)
	require.Equal(t, "18:30", venuetime.FormatClock(minutes))

	_, err = venuetime.ParseClock("25:00")
	require.Error(t, err)

	_, err = venuetime.ParseClock("noon")
	require.Error(t, err)
}

func TestNowUsesVenueZone(t *testing.T) {
	fixed := time.Date(2024, 7, 2, 2, 30, 0, 0, time.UTC)
	n, err := venuetime.New("America/New_York", venuetime.WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	require.Equal(t, "2024-07-01", n.Today())
	require.Equal(t, 22, n.Now().Hour())
}

func TestNewRejectsUnknownZone(t *testing.T) {
	_, err := venuetime.New("Mars/Olympus_Mons")
	require.Error(t, err)
}
