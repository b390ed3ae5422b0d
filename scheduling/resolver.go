package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"
)

// NoTimeHour is the bucket for tasks whose authoritative timestamp carries no
// time of day.
const NoTimeHour = -1

// AllDayLabel is the display label used in place of a clock time.
const AllDayLabel = "All day"

// Timestamp layouts observed in persisted documents, tried in order.
var timestampLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
}

var dateOnlyPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ResolvedTime is the interpretation of one task's authoritative timestamp.
// When HasTime is false, Hour is NoTimeHour and labels render as AllDayLabel.
type ResolvedTime struct {
	Raw      string
	DatePart string
	Hour     int
	Minute   int
	HasTime  bool
}

// Resolve picks the authoritative timestamp of a task and interprets it.
// Field precedence is fixed: reminder time, else due time, else created time.
// Every scheduling view relies on this order.
func Resolve(t models.Task) ResolvedTime {
	return ResolveString(AuthoritativeTimestamp(t))
}

// AuthoritativeTimestamp returns the raw string the calendar and timeline
// views place the task by.
func AuthoritativeTimestamp(t models.Task) string {
	if strings.TrimSpace(t.ReminderTime) != "" {
		return t.ReminderTime
	}
	if strings.TrimSpace(t.DueTime) != "" {
		return t.DueTime
	}
	return t.CreatedTime
}

// ResolveString interprets one raw timestamp string. Malformed input never
// produces an error: date-only and unparseable strings resolve to the no-time
// bucket, and a present-but-broken clock token degrades to 9:00.
func ResolveString(raw string) ResolvedTime {
	resolved := ResolvedTime{
		Raw:      raw,
		DatePart: datePart(raw),
		Hour:     NoTimeHour,
	}

	parts := strings.SplitN(strings.TrimSpace(raw), " ", 2)
	if len(parts) < 2 || !strings.Contains(parts[1], ":") {
		return resolved
	}

	hour, minute, ok := parseClock(parts[1])
	if !ok {
		// Degrade instead of failing; the UI would rather show a wrong
		// default slot than an error.
		hour, minute = 9, 0
	}
	resolved.Hour = hour
	resolved.Minute = minute
	resolved.HasTime = true
	return resolved
}

func datePart(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if dateOnlyPattern.MatchString(trimmed) {
		return trimmed
	}
	if idx := strings.Index(trimmed, " "); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}

// parseClock parses an HH:mm token in 24-hour form.
func parseClock(token string) (hour, minute int, ok bool) {
	fields := strings.SplitN(strings.TrimSpace(token), ":", 2)
	if len(fields) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(fields[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// StartLabel renders the resolved time as a 12-hour clock label with minutes,
// e.g. "2:00 PM", or AllDayLabel when no time is present.
func (r ResolvedTime) StartLabel() string {
	if !r.HasTime {
		return AllDayLabel
	}
	h, suffix := clock12(r.Hour)
	return fmt.Sprintf("%d:%02d %s", h, r.Minute, suffix)
}

// End derives the end of the displayed range. A positive duration is added to
// the start with minute carry; otherwise the range defaults to one hour. The
// result always wraps within a 24-hour clock.
func (r ResolvedTime) End(estimatedMinutes int) (hour, minute int) {
	if !r.HasTime {
		return NoTimeHour, 0
	}
	if estimatedMinutes <= 0 {
		return (r.Hour + 1) % 24, r.Minute
	}
	minute = r.Minute + estimatedMinutes
	hour = (r.Hour + minute/60) % 24
	minute %= 60
	return hour, minute
}

// EndLabel renders the derived end of range, e.g. "3:30 PM".
func (r ResolvedTime) EndLabel(estimatedMinutes int) string {
	hour, minute := r.End(estimatedMinutes)
	if hour == NoTimeHour {
		return AllDayLabel
	}
	h, suffix := clock12(hour)
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// HourLabel is the canonical hour-bucket label: 0 -> "12 AM", 11 -> "11 AM",
// 12 -> "12 PM", 23 -> "11 PM". Out-of-range hours (including NoTimeHour)
// render as AllDayLabel. This table used to be copy-pasted across every
// calendar adapter; this function is now its only owner.
func HourLabel(hour int) string {
	if hour < 0 || hour > 23 {
		return AllDayLabel
	}
	h, suffix := clock12(hour)
	return fmt.Sprintf("%d %s", h, suffix)
}

// ParseHourLabel inverts HourLabel. Unrecognized labels map to NoTimeHour.
func ParseHourLabel(label string) int {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return NoTimeHour
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil || h < 1 || h > 12 {
		return NoTimeHour
	}
	switch fields[1] {
	case "AM":
		if h == 12 {
			return 0
		}
		return h
	case "PM":
		if h == 12 {
			return 12
		}
		return h + 12
	default:
		return NoTimeHour
	}
}

func clock12(hour int) (int, string) {
	switch {
	case hour == 0:
		return 12, "AM"
	case hour < 12:
		return hour, "AM"
	case hour == 12:
		return 12, "PM"
	default:
		return hour - 12, "PM"
	}
}

// ParseTimestamp attempts an absolute parse of a raw timestamp against every
// layout the clients are known to write. Callers that need a point in time
// (statistics windows, reminder scheduling) use this; display paths go through
// ResolveString and never see the error.
func ParseTimestamp(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", raw)
}
