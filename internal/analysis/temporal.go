package analysis

import (
	"time"

	"mwa/internal/models"
)

// dayNames orders the heatmap rows Monday-first.
var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dayIndex(t time.Time) int {
	// time.Weekday is Sunday-based.
	return (int(t.Weekday()) + 6) % 7
}

// HourDayHeatmap counts all messages per (weekday, hour) bucket. The full
// 7x24 grid is emitted so quiet buckets render as zeros.
func HourDayHeatmap(col *models.Collection) []models.HeatmapCell {
	var grid [7][24]int
	for _, key := range col.Contacts() {
		for _, m := range col.ByContact(key) {
			grid[dayIndex(m.Timestamp)][m.Timestamp.Hour()]++
		}
	}

	out := make([]models.HeatmapCell, 0, 7*24)
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			out = append(out, models.HeatmapCell{Day: dayNames[d], Hour: h, Count: grid[d][h]})
		}
	}
	return out
}

// PeakHours finds the busiest hour of day for each year, ascending by year.
// An hour tie resolves to the earliest hour.
func PeakHours(col *models.Collection) []models.PeakHour {
	byYear := make(map[int]*[24]int)
	for _, key := range col.Contacts() {
		for _, m := range col.ByContact(key) {
			hours := byYear[m.Year()]
			if hours == nil {
				hours = &[24]int{}
				byYear[m.Year()] = hours
			}
			hours[m.Timestamp.Hour()]++
		}
	}

	out := make([]models.PeakHour, 0, len(byYear))
	for _, y := range col.Years() {
		hours := byYear[y]
		if hours == nil {
			continue
		}
		peak := 0
		for h := 1; h < 24; h++ {
			if hours[h] > hours[peak] {
				peak = h
			}
		}
		out = append(out, models.PeakHour{Year: y, Hour: peak, Messages: hours[peak]})
	}
	return out
}
