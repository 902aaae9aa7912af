package internal

import (
	"net/http"

	"mwa/internal/controllers"
	"mwa/internal/providers"
	"mwa/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/relationships", http.HandlerFunc(apiController.GetRelationships))
	routers.Get("/rankings", http.HandlerFunc(apiController.GetRankings))
	routers.Get("/rankshifts", http.HandlerFunc(apiController.GetRankShifts))
	routers.Get("/trajectories", http.HandlerFunc(apiController.GetTrajectories))
	routers.Get("/streaks", http.HandlerFunc(apiController.GetStreaks))
	routers.Get("/volume", http.HandlerFunc(apiController.GetVolume))
	routers.Get("/heatmap", http.HandlerFunc(apiController.GetHeatmap))
	routers.Get("/peakhours", http.HandlerFunc(apiController.GetPeakHours))
	routers.Get("/questions", http.HandlerFunc(apiController.GetQuestions))
	routers.Get("/phrases", http.HandlerFunc(apiController.GetPhrases))
	routers.Get("/terms", http.HandlerFunc(apiController.GetTerms))
	routers.Get("/topics", http.HandlerFunc(apiController.GetTopics))
	routers.Get("/sentiment", http.HandlerFunc(apiController.GetSentiment))
	routers.Get("/failures", http.HandlerFunc(apiController.GetFailures))
	routers.Post("/refresh", http.HandlerFunc(apiController.Refresh))
	return routers
}
