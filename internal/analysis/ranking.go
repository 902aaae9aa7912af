package analysis

import (
	"sort"

	"mwa/internal/models"
	"mwa/internal/structures"
)

// YearlyRankings ranks contacts by message volume within each calendar year.
// Equal counts share the minimum rank and the next rank skips accordingly
// (competition ranking), so tie-breaking is a contract, not a sort artifact.
func YearlyRankings(col *models.Collection) []models.YearlyRanking {
	type cell struct {
		total, sent int
	}
	perYear := make(map[int]map[string]*cell)

	for _, key := range col.Contacts() {
		for _, m := range col.ByContact(key) {
			y := m.Year()
			if perYear[y] == nil {
				perYear[y] = make(map[string]*cell)
			}
			c := perYear[y][key]
			if c == nil {
				c = &cell{}
				perYear[y][key] = c
			}
			c.total++
			if m.FromOwner() {
				c.sent++
			}
		}
	}

	var out []models.YearlyRanking
	for _, year := range col.Years() {
		cells := perYear[year]
		rows := make([]models.YearlyRanking, 0, len(cells))
		for key, c := range cells {
			rows = append(rows, models.YearlyRanking{
				Year:       year,
				ContactKey: key,
				Messages:   c.total,
				Sent:       c.sent,
				Received:   c.total - c.sent,
			})
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Messages != rows[j].Messages {
				return rows[i].Messages > rows[j].Messages
			}
			return rows[i].ContactKey < rows[j].ContactKey
		})
		for i := range rows {
			if i > 0 && rows[i].Messages == rows[i-1].Messages {
				rows[i].Rank = rows[i-1].Rank
			} else {
				rows[i].Rank = i + 1
			}
		}
		out = append(out, rows...)
	}
	return out
}

// rankIndex maps year -> contact -> rank for threshold queries.
func rankIndex(rankings []models.YearlyRanking) map[int]map[string]int {
	idx := make(map[int]map[string]int)
	for _, r := range rankings {
		if idx[r.Year] == nil {
			idx[r.Year] = make(map[string]int)
		}
		idx[r.Year][r.ContactKey] = r.Rank
	}
	return idx
}

// RankShiftFor classifies risers and decliners between two years.
//
// Rising: absent in y1 or ranked worse than the rising floor, and inside the
// top tier in y2. Faded: inside the top tier in y1, and absent in y2 or
// ranked worse than the faded floor. Absence counts as "worse than floor".
func RankShiftFor(rankings []models.YearlyRanking, y1, y2 int, conf *structures.AnalysisConfig) models.RankShift {
	idx := rankIndex(rankings)
	shift := models.RankShift{FromYear: y1, ToYear: y2}

	contacts := make(map[string]struct{})
	for key := range idx[y1] {
		contacts[key] = struct{}{}
	}
	for key := range idx[y2] {
		contacts[key] = struct{}{}
	}

	keys := make([]string, 0, len(contacts))
	for key := range contacts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		r1, ok1 := idx[y1][key]
		r2, ok2 := idx[y2][key]

		if ok2 && r2 <= conf.RisingTier && (!ok1 || r1 > conf.RisingFloor) {
			shift.Rising = append(shift.Rising, rankMove(key, r1, ok1, r2, ok2))
		}
		if ok1 && r1 <= conf.FadedTier && (!ok2 || r2 > conf.FadedFloor) {
			shift.Faded = append(shift.Faded, rankMove(key, r1, ok1, r2, ok2))
		}
	}

	sort.SliceStable(shift.Rising, func(i, j int) bool {
		return *shift.Rising[i].ToRank < *shift.Rising[j].ToRank
	})
	sort.SliceStable(shift.Faded, func(i, j int) bool {
		return *shift.Faded[i].FromRank < *shift.Faded[j].FromRank
	})
	return shift
}

func rankMove(key string, r1 int, ok1 bool, r2 int, ok2 bool) models.RankMove {
	mv := models.RankMove{ContactKey: key}
	if ok1 {
		v := r1
		mv.FromRank = &v
	}
	if ok2 {
		v := r2
		mv.ToRank = &v
	}
	return mv
}

// RankShifts classifies every consecutive year pair in the collection.
func RankShifts(rankings []models.YearlyRanking, years []int, conf *structures.AnalysisConfig) []models.RankShift {
	var out []models.RankShift
	for i := 1; i < len(years); i++ {
		out = append(out, RankShiftFor(rankings, years[i-1], years[i], conf))
	}
	return out
}

// Trajectories projects the ranking table onto a chosen contact set across
// all years in order. Years where a contact is absent produce no point: a
// chart gap, not a rank.
func Trajectories(rankings []models.YearlyRanking, years []int, contacts []string) []models.Trajectory {
	idx := rankIndex(rankings)
	out := make([]models.Trajectory, 0, len(contacts))
	for _, key := range contacts {
		tr := models.Trajectory{ContactKey: key}
		for _, y := range years {
			if rank, ok := idx[y][key]; ok {
				tr.Points = append(tr.Points, models.TrajectoryPoint{Year: y, Rank: rank})
			}
		}
		out = append(out, tr)
	}
	return out
}

// YearlyVolumes totals sent and received per calendar year, along with the
// number of distinct days that saw at least one owner-sent message.
func YearlyVolumes(col *models.Collection) []models.YearlyVolume {
	totals := make(map[int]*models.YearlyVolume)
	sentDays := make(map[int]map[string]struct{})
	for _, key := range col.Contacts() {
		for _, m := range col.ByContact(key) {
			v := totals[m.Year()]
			if v == nil {
				v = &models.YearlyVolume{Year: m.Year()}
				totals[m.Year()] = v
				sentDays[m.Year()] = make(map[string]struct{})
			}
			v.Total++
			if m.FromOwner() {
				v.Sent++
				sentDays[m.Year()][m.Timestamp.Format(dateLayout)] = struct{}{}
			} else {
				v.Received++
			}
		}
	}
	out := make([]models.YearlyVolume, 0, len(totals))
	for _, y := range sortedYears(totals) {
		totals[y].ActiveDays = len(sentDays[y])
		out = append(out, *totals[y])
	}
	return out
}

func sortedYears(m map[int]*models.YearlyVolume) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
