// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts every API route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /syllabus", h.getSyllabus)
	mux.HandleFunc("PUT /syllabus", h.replaceSyllabus)

	mux.HandleFunc("POST /users/{userID}/answers", h.submitAnswer)
	mux.HandleFunc("GET /users/{userID}/answers", h.listAnswers)
	mux.HandleFunc("POST /answers/{answerID}/evaluation", h.recordEvaluation)
	mux.HandleFunc("POST /answers/{answerID}/grade", h.gradeAnswer)
	mux.HandleFunc("POST /answers/{answerID}/similarity", h.recordSimilarity)

	mux.HandleFunc("GET /users/{userID}/progress/summary", h.progressSummary)
	mux.HandleFunc("GET /users/{userID}/progress/topics", h.topicScores)
	mux.HandleFunc("GET /users/{userID}/progress/syllabus", h.syllabusOverview)
	mux.HandleFunc("GET /users/{userID}/progress/syllabus/topics/{topicID}", h.topicDetail)
	mux.HandleFunc("GET /users/{userID}/progress/strengths", h.strengthAnalysis)
	mux.HandleFunc("GET /users/{userID}/progress/timeline", h.timeline)
	mux.HandleFunc("GET /users/{userID}/progress/streak", h.streak)
	mux.HandleFunc("GET /users/{userID}/progress/recommendations", h.recommendations)

	mux.HandleFunc("GET /users/{userID}/similarity/stats", h.similarityStats)
	mux.HandleFunc("GET /users/{userID}/similarity/history", h.similarityHistory)
}
