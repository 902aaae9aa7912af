package analysis

import (
	"sort"
	"time"

	"mwa/internal/models"
)

const dateLayout = "2006-01-02"

// LongestStreakFor finds one contact's longest run of consecutive calendar
// days with at least one owner-sent message. Ties break toward the earliest
// start. Returns false when the owner never sent this contact a message.
func LongestStreakFor(key string, msgs []models.Message) (models.Streak, bool) {
	daySet := make(map[string]struct{})
	for _, m := range msgs {
		if m.FromOwner() {
			daySet[m.Timestamp.Format(dateLayout)] = struct{}{}
		}
	}
	if len(daySet) == 0 {
		return models.Streak{}, false
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best := models.Streak{ContactKey: key}
	curStart, curLen := days[0], 1

	flush := func(end time.Time) {
		if curLen > best.Length {
			best.Length = curLen
			best.StartDate = curStart.Format(dateLayout)
			best.EndDate = end.Format(dateLayout)
		}
	}

	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			curLen++
			continue
		}
		flush(days[i-1])
		curStart, curLen = days[i], 1
	}
	flush(days[len(days)-1])

	return best, true
}

// Streaks computes the longest streak per contact, longest first.
func Streaks(col *models.Collection) []models.Streak {
	var out []models.Streak
	for _, key := range col.Contacts() {
		if s, ok := LongestStreakFor(key, col.ByContact(key)); ok {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].StartDate < out[j].StartDate
	})
	return out
}
