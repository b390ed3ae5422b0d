package scheduling

import (
	"fmt"
	"testing"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourLabel(t *testing.T) {
	t.Run("boundary table", func(t *testing.T) {
		assert.Equal(t, "12 AM", HourLabel(0))
		assert.Equal(t, "1 AM", HourLabel(1))
		assert.Equal(t, "11 AM", HourLabel(11))
		assert.Equal(t, "12 PM", HourLabel(12))
		assert.Equal(t, "1 PM", HourLabel(13))
		assert.Equal(t, "11 PM", HourLabel(23))
	})

	t.Run("out of range renders all day", func(t *testing.T) {
		assert.Equal(t, AllDayLabel, HourLabel(NoTimeHour))
		assert.Equal(t, AllDayLabel, HourLabel(24))
	})

	t.Run("label round trip is idempotent for all 24 hours", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			label := HourLabel(hour)
			assert.Equal(t, hour, ParseHourLabel(label), "hour %d", hour)
			assert.Equal(t, label, HourLabel(ParseHourLabel(label)))
		}
	})

	t.Run("unrecognized labels map to the no-time bucket", func(t *testing.T) {
		assert.Equal(t, NoTimeHour, ParseHourLabel("noon"))
		assert.Equal(t, NoTimeHour, ParseHourLabel("13 PM"))
		assert.Equal(t, NoTimeHour, ParseHourLabel(""))
	})
}

func TestAuthoritativeTimestamp(t *testing.T) {
	task := models.Task{
		CreatedTime:  "01/01/2025 08:00",
		DueTime:      "02/01/2025 10:00",
		ReminderTime: "02/01/2025 09:30",
	}
	assert.Equal(t, task.ReminderTime, AuthoritativeTimestamp(task))

	task.ReminderTime = ""
	assert.Equal(t, task.DueTime, AuthoritativeTimestamp(task))

	task.DueTime = "   "
	assert.Equal(t, task.CreatedTime, AuthoritativeTimestamp(task))
}

func TestResolveString(t *testing.T) {
	t.Run("date and time", func(t *testing.T) {
		r := ResolveString("15/10/2022 14:00")
		assert.True(t, r.HasTime)
		assert.Equal(t, 14, r.Hour)
		assert.Equal(t, 0, r.Minute)
		assert.Equal(t, "15/10/2022", r.DatePart)
		assert.Equal(t, "2:00 PM", r.StartLabel())
	})

	t.Run("date-only resolves to the no-time bucket", func(t *testing.T) {
		r := ResolveString("15/10/2022")
		assert.False(t, r.HasTime)
		assert.Equal(t, NoTimeHour, r.Hour)
		assert.Equal(t, "15/10/2022", r.DatePart)
		assert.Equal(t, AllDayLabel, r.StartLabel())
	})

	t.Run("second token without a colon is treated as date-only", func(t *testing.T) {
		r := ResolveString("15/10/2022 morning")
		assert.False(t, r.HasTime)
		assert.Equal(t, NoTimeHour, r.Hour)
	})

	t.Run("broken clock token degrades to 9:00", func(t *testing.T) {
		for _, raw := range []string{"15/10/2022 naptime:now", "15/10/2022 25:00", "15/10/2022 14:99"} {
			r := ResolveString(raw)
			assert.True(t, r.HasTime, raw)
			assert.Equal(t, 9, r.Hour, raw)
			assert.Equal(t, "9:00 AM", r.StartLabel(), raw)
		}
	})

	t.Run("date part of a non dd/MM/yyyy string is the substring before the space", func(t *testing.T) {
		r := ResolveString("2025-01-20 09:00")
		assert.Equal(t, "2025-01-20", r.DatePart)
		assert.Equal(t, 9, r.Hour)
	})

	t.Run("midnight and noon boundaries", func(t *testing.T) {
		assert.Equal(t, "12:00 AM", ResolveString("01/01/2025 00:00").StartLabel())
		assert.Equal(t, "12:30 PM", ResolveString("01/01/2025 12:30").StartLabel())
	})
}

func TestEndDerivation(t *testing.T) {
	t.Run("estimated duration carries minutes into the hour", func(t *testing.T) {
		r := ResolveString("15/10/2022 14:00")
		assert.Equal(t, "2:00 PM", r.StartLabel())
		assert.Equal(t, "3:30 PM", r.EndLabel(90))
	})

	t.Run("zero duration defaults to one hour", func(t *testing.T) {
		r := ResolveString("15/10/2022 14:15")
		assert.Equal(t, "3:15 PM", r.EndLabel(0))
	})

	t.Run("overflow wraps within a 24-hour clock", func(t *testing.T) {
		r := ResolveString("15/10/2022 23:30")
		assert.Equal(t, "12:30 AM", r.EndLabel(60))

		r = ResolveString("15/10/2022 23:00")
		assert.Equal(t, "12:00 AM", r.EndLabel(0))
	})

	t.Run("no time yields all day", func(t *testing.T) {
		r := ResolveString("15/10/2022")
		assert.Equal(t, AllDayLabel, r.EndLabel(90))
	})
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"15/10/2022 14:00", time.Date(2022, 10, 15, 14, 0, 0, 0, time.UTC)},
		{"15/10/2022", time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"2022-10-15T14:00:00Z", time.Date(2022, 10, 15, 14, 0, 0, 0, time.UTC)},
		{"2022-10-15 14:00:00", time.Date(2022, 10, 15, 14, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			parsed, err := ParseTimestamp(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, parsed)
		})
	}

	t.Run("unrecognized input returns an error", func(t *testing.T) {
		_, err := ParseTimestamp("next tuesday")
		assert.Error(t, err)
		_, err = ParseTimestamp("")
		assert.Error(t, err)
	})
}

func TestGroupByHour(t *testing.T) {
	tasks := []models.Task{
		{Title: "standup", DueTime: "20/01/2025 09:00"},
		{Title: "review", DueTime: "20/01/2025 09:30"},
		{Title: "lunch", DueTime: "20/01/2025 12:00"},
		{Title: "groceries", DueTime: "20/01/2025"},
	}

	slots := GroupByHour(tasks)
	require.Len(t, slots, 3)

	assert.Equal(t, NoTimeHour, slots[0].Hour)
	assert.Equal(t, AllDayLabel, slots[0].Label)
	require.Len(t, slots[0].Tasks, 1)
	assert.Equal(t, "groceries", slots[0].Tasks[0].Title)

	assert.Equal(t, 9, slots[1].Hour)
	assert.Equal(t, "9 AM", slots[1].Label)
	assert.Len(t, slots[1].Tasks, 2)

	assert.Equal(t, 12, slots[2].Hour)
	assert.Equal(t, "12 PM", slots[2].Label)
}

func TestFilterByDate(t *testing.T) {
	tasks := []models.Task{
		{Title: "a", DueTime: "20/01/2025 09:00"},
		{Title: "b", DueTime: "21/01/2025 09:00"},
		{Title: "c", ReminderTime: "20/01/2025"},
	}

	matched := FilterByDate(tasks, "20/01/2025")
	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].Title)
	assert.Equal(t, "c", matched[1].Title)
}

func TestResolvePrecedenceDrivesBucket(t *testing.T) {
	task := models.Task{
		CreatedTime:  "01/01/2025 06:00",
		DueTime:      "01/01/2025 18:00",
		ReminderTime: "01/01/2025 07:15",
	}
	r := Resolve(task)
	assert.Equal(t, 7, r.Hour)
	assert.Equal(t, fmt.Sprintf("%d:%02d AM", 7, 15), r.StartLabel())
}
