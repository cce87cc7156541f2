package counseling

import (
	"fmt"
	"time"

	"github.com/Mishael-2584/odel-portal-api/internal/models"
)

const (
	// Counseling sessions are booked in fixed one-hour slots.
	slotMinutes = 60

	// Lunch window [12:30, 14:00): no slot may overlap any part of it.
	lunchStartMin = 12*60 + 30
	lunchEndMin   = 14 * 60

	// Slots starting within the next few minutes are not bookable.
	todayBufferMin = 5
)

func parseHM(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func sameLocalDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// GenerateSlots produces the ordered bookable slot start times ("HH:MM") for
// one weekday's working hours on the given date. A nil, inactive or
// malformed entry means a non-working day and yields nothing. Slots whose
// hour would overlap the lunch window are dropped and the march resumes at
// the end of lunch. When date is today (compared in local date components),
// slots starting at or before now+5min are dropped as well.
func GenerateSlots(wh *models.WorkingHours, date time.Time, now time.Time) []string {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return nil
	}

	start, ok := parseHM(wh.StartTime)
	if !ok {
		return nil
	}
	end, ok := parseHM(wh.EndTime)
	if !ok || end <= start {
		return nil
	}

	isToday := sameLocalDate(date, now)
	nowMin := now.Hour()*60 + now.Minute()

	var slots []string
	for cur := start; cur+slotMinutes <= end; {
		if cur < lunchEndMin && cur+slotMinutes > lunchStartMin {
			cur = lunchEndMin
			continue
		}

		if isToday && cur <= nowMin+todayBufferMin {
			cur += slotMinutes
			continue
		}

		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
		cur += slotMinutes
	}

	return slots
}
