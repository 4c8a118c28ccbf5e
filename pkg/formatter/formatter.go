package formatter

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// InvalidDate is returned for timestamps that cannot be parsed.
	InvalidDate = "Invalid Date"

	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006, 03:04 PM"
)

// ErrInvalidTimestamp is returned by Parse for unrecognised input.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// zonedLayouts carry their own offset; localLayouts are read in the
// formatter's location.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339}
	localLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}
)

// Formatter renders display strings in a fixed location and locale.
type Formatter struct {
	loc     *time.Location
	printer *message.Printer
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation sets the zone timestamps are displayed in. Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// New returns a Formatter for US English, displaying times in UTC unless
// WithLocation is given.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		loc:     time.UTC,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Parse reads an ISO-8601 timestamp. Values without an offset are taken to
// be in the formatter's location.
func (f *Formatter) Parse(iso string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, iso, f.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, iso)
}

// Date renders iso as "Jan 2, 2006".
func (f *Formatter) Date(iso string) string {
	t, err := f.Parse(iso)
	if err != nil {
		return InvalidDate
	}
	return f.DateOf(t)
}

// DateTime renders iso as "Jan 2, 2006, 03:04 PM".
func (f *Formatter) DateTime(iso string) string {
	t, err := f.Parse(iso)
	if err != nil {
		return InvalidDate
	}
	return f.DateTimeOf(t)
}

// DateOf renders t as "Jan 2, 2006". The zero time is an invalid date.
func (f *Formatter) DateOf(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.In(f.loc).Format(dateLayout)
}

// DateTimeOf renders t as "Jan 2, 2006, 03:04 PM". The zero time is an invalid date.
func (f *Formatter) DateTimeOf(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.In(f.loc).Format(dateTimeLayout)
}

// Votes renders a vote count with thousands separators: "1 vote", "1,234 votes".
func (f *Formatter) Votes(n int) string {
	if n == 1 || n == -1 {
		return f.printer.Sprintf("%d vote", n)
	}
	return f.printer.Sprintf("%d votes", n)
}

var defaultFormatter = New()

// Date renders iso as "Jan 2, 2006" in UTC.
func Date(iso string) string {
	return defaultFormatter.Date(iso)
}

// DateTime renders iso as "Jan 2, 2006, 03:04 PM" in UTC.
func DateTime(iso string) string {
	return defaultFormatter.DateTime(iso)
}

// Votes renders a vote count with the default formatter.
func Votes(n int) string {
	return defaultFormatter.Votes(n)
}
