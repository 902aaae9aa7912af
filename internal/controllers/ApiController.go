package controllers

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"mwa/internal/models"
	"mwa/internal/providers"
	"mwa/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.AnalysisServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.AnalysisServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

// yearFilter reads the optional ?year= query parameter. Garbage values cast
// to 0, which means "all years".
func yearFilter(r *http.Request) int {
	return cast.ToInt(r.URL.Query().Get("year"))
}

func (ac *ApiController) serveTable(w http.ResponseWriter, cacheKey string, extract func(*models.Results) any) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	results := ac.service.GetResults()
	if results == nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	gson, err := json.Marshal(extract(results))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetRelationships(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "relationships", func(res *models.Results) any { return res.Relationships })
}

func (ac *ApiController) GetRankings(w http.ResponseWriter, r *http.Request) {
	year := yearFilter(r)
	ac.serveTable(w, cast.ToString(year)+":rankings", func(res *models.Results) any {
		if year == 0 {
			return res.Rankings
		}
		out := make([]models.YearlyRanking, 0)
		for _, row := range res.Rankings {
			if row.Year == year {
				out = append(out, row)
			}
		}
		return out
	})
}

func (ac *ApiController) GetRankShifts(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "rankshifts", func(res *models.Results) any { return res.RankShifts })
}

func (ac *ApiController) GetTrajectories(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "trajectories", func(res *models.Results) any { return res.Trajectories })
}

func (ac *ApiController) GetStreaks(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "streaks", func(res *models.Results) any { return res.Streaks })
}

func (ac *ApiController) GetVolume(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "volume", func(res *models.Results) any { return res.Volume })
}

func (ac *ApiController) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "heatmap", func(res *models.Results) any { return res.Heatmap })
}

func (ac *ApiController) GetPeakHours(w http.ResponseWriter, r *http.Request) {
	year := yearFilter(r)
	ac.serveTable(w, cast.ToString(year)+":peakhours", func(res *models.Results) any {
		if year == 0 {
			return res.PeakHours
		}
		out := make([]models.PeakHour, 0)
		for _, row := range res.PeakHours {
			if row.Year == year {
				out = append(out, row)
			}
		}
		return out
	})
}

// GetQuestions serves both question-ratio tables in one payload; they are
// always read together.
func (ac *ApiController) GetQuestions(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "questions", func(res *models.Results) any {
		return struct {
			ByYear    []models.YearQuestionRatio    `json:"by_year"`
			ByContact []models.ContactQuestionRatio `json:"by_contact"`
		}{res.QuestionsByYear, res.QuestionsByContact}
	})
}

func (ac *ApiController) GetPhrases(w http.ResponseWriter, r *http.Request) {
	year := yearFilter(r)
	ac.serveTable(w, cast.ToString(year)+":phrases", func(res *models.Results) any {
		if year == 0 {
			return res.Phrases
		}
		out := make([]models.PhraseCount, 0)
		for _, row := range res.Phrases {
			if row.Year == year {
				out = append(out, row)
			}
		}
		return out
	})
}

func (ac *ApiController) GetTerms(w http.ResponseWriter, r *http.Request) {
	year := yearFilter(r)
	ac.serveTable(w, cast.ToString(year)+":terms", func(res *models.Results) any {
		if year == 0 {
			return res.Terms
		}
		out := make([]models.TermScore, 0)
		for _, row := range res.Terms {
			if row.Year == year {
				out = append(out, row)
			}
		}
		return out
	})
}

func (ac *ApiController) GetTopics(w http.ResponseWriter, r *http.Request) {
	year := yearFilter(r)
	ac.serveTable(w, cast.ToString(year)+":topics", func(res *models.Results) any {
		if year == 0 {
			return res.Topics
		}
		out := make([]models.Topic, 0)
		for _, row := range res.Topics {
			if row.Year == year {
				out = append(out, row)
			}
		}
		return out
	})
}

func (ac *ApiController) GetSentiment(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "sentiment", func(res *models.Results) any { return res.Sentiment })
}

func (ac *ApiController) GetFailures(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "failures", func(res *models.Results) any { return res.Failures })
}

// Refresh re-runs the analysis in the background. The run outlives the
// request, so it gets its own context.
func (ac *ApiController) Refresh(w http.ResponseWriter, r *http.Request) {
	go func() {
		err := ac.service.Run(context.Background())
		if err == services.ErrRunInProgress {
			ac.logger.Warnf(providers.TypeHttp, "Refresh skipped: run already in progress")
			return
		}
		if err != nil {
			ac.logger.Errorf(providers.TypeHttp, "Refresh failed: %s", err)
		}
	}()
	w.WriteHeader(http.StatusAccepted)
}
