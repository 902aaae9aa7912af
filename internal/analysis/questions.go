package analysis

import (
	"sort"
	"strings"

	"mwa/internal/models"
	"mwa/internal/structures"
)

func isQuestion(text string) bool {
	return strings.Contains(text, "?")
}

// QuestionRatiosByYear measures what share of owner-sent messages contain a
// question mark, per calendar year.
func QuestionRatiosByYear(col *models.Collection) []models.YearQuestionRatio {
	byYear := make(map[int]*models.YearQuestionRatio)
	for _, key := range col.Contacts() {
		for _, m := range col.ByContact(key) {
			if !m.FromOwner() {
				continue
			}
			row := byYear[m.Year()]
			if row == nil {
				row = &models.YearQuestionRatio{Year: m.Year()}
				byYear[m.Year()] = row
			}
			row.Total++
			if isQuestion(m.Text) {
				row.Questions++
			}
		}
	}

	out := make([]models.YearQuestionRatio, 0, len(byYear))
	for _, y := range col.Years() {
		row := byYear[y]
		if row == nil {
			continue
		}
		row.Pct = float64(row.Questions) / float64(row.Total) * 100
		out = append(out, *row)
	}
	return out
}

// QuestionRatiosByContact measures the question share of owner-sent messages
// per contact, descending by share. Contacts under conf.QuestionMinMessages
// sent messages are left out; a ratio over a handful of texts says nothing.
func QuestionRatiosByContact(col *models.Collection, conf *structures.AnalysisConfig) []models.ContactQuestionRatio {
	out := make([]models.ContactQuestionRatio, 0)
	for _, key := range col.Contacts() {
		row := models.ContactQuestionRatio{ContactKey: key}
		for _, m := range col.ByContact(key) {
			if !m.FromOwner() {
				continue
			}
			row.Total++
			if isQuestion(m.Text) {
				row.Questions++
			}
		}
		if row.Total < conf.QuestionMinMessages {
			continue
		}
		row.Pct = float64(row.Questions) / float64(row.Total) * 100
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pct != out[j].Pct {
			return out[i].Pct > out[j].Pct
		}
		return out[i].ContactKey < out[j].ContactKey
	})
	return out
}
