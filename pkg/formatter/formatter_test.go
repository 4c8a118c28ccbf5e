package formatter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/pkg/formatter"
)

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("formats ISO date", func(t *testing.T) {
		t.Parallel()
		result := formatter.Date("2024-12-01T10:30:00Z")
		assert.Contains(t, result, "Dec")
		assert.Contains(t, result, "2024")
		assert.Equal(t, "Dec 1, 2024", result)
	})

	t.Run("accepts fractional seconds", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Dec 5, 2024", formatter.Date("2024-12-05T14:20:00.123Z"))
	})

	t.Run("accepts a bare date", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Mar 9, 2025", formatter.Date("2025-03-09"))
	})

	t.Run("returns Invalid Date for malformed input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, formatter.InvalidDate, formatter.Date("not a date"))
		assert.Equal(t, formatter.InvalidDate, formatter.Date(""))
	})
}

func TestDateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "morning", input: "2024-12-01T10:30:00Z", expected: "Dec 1, 2024, 10:30 AM"},
		{name: "pads single digit hour", input: "2024-12-03T09:15:00Z", expected: "Dec 3, 2024, 09:15 AM"},
		{name: "afternoon", input: "2024-12-05T14:20:00Z", expected: "Dec 5, 2024, 02:20 PM"},
		{name: "converts offsets to UTC", input: "2024-12-05T14:20:00+02:00", expected: "Dec 5, 2024, 12:20 PM"},
		{name: "invalid", input: "2024-13-45", expected: formatter.InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, formatter.DateTime(tt.input))
		})
	}
}

func TestFormatterWithLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("EST", -5*60*60)
	f := formatter.New(formatter.WithLocation(loc))

	assert.Equal(t, "Dec 1, 2024, 05:30 AM", f.DateTime("2024-12-01T10:30:00Z"))
	assert.Equal(t, "Nov 30, 2024", f.Date("2024-12-01T03:00:00Z"))

	parsed, err := f.Parse("2024-12-01T10:30:00")
	require.NoError(t, err)
	assert.Equal(t, loc, parsed.Location())

	_, err = f.Parse("yesterday")
	assert.ErrorIs(t, err, formatter.ErrInvalidTimestamp)
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	f := formatter.New()
	ts := time.Date(2024, time.December, 3, 21, 5, 0, 0, time.UTC)

	assert.Equal(t, "Dec 3, 2024", f.DateOf(ts))
	assert.Equal(t, "Dec 3, 2024, 09:05 PM", f.DateTimeOf(ts))
	assert.Equal(t, formatter.InvalidDate, f.DateOf(time.Time{}))
	assert.Equal(t, formatter.InvalidDate, f.DateTimeOf(time.Time{}))
}

func TestVotes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 votes", formatter.Votes(0))
	assert.Equal(t, "1 vote", formatter.Votes(1))
	assert.Equal(t, "15 votes", formatter.Votes(15))
	assert.Equal(t, "1,234 votes", formatter.Votes(1234))
}
