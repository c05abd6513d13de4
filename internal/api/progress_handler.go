package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/examprep/backend/internal/analytics"
)

// ── Query parameters ────────────────────────────────────────────────────────

var errBadParam = errors.New("invalid query parameter")

// queryInt reads an integer query parameter, returning fallback when absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errBadParam
	}
	return n, nil
}

// queryLocation reads the tz parameter. nil means the configured default.
func queryLocation(r *http.Request) (*time.Location, error) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

type StreakResponse struct {
	UserID        string `json:"user_id" example:"u1"`
	CurrentStreak int    `json:"current_streak" example:"4"`
	Timezone      string `json:"timezone" example:"Asia/Kolkata"`
}

type TimelineResponse struct {
	Days     int                   `json:"days" example:"30"`
	Timezone string                `json:"timezone" example:"UTC"`
	Timeline []analytics.DayBucket `json:"timeline"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// progressSummary returns the dashboard headline numbers.
// @Summary      Progress summary
// @Tags         Progress
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  analytics.Summary
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/progress/summary [get]
func (h *Handler) progressSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.progress.Summary(r.Context(), r.PathValue("userID"))
	if h.handleError(w, err, "summary") {
		return
	}
	respondJSON(w, http.StatusOK, sum)
}

// topicScores returns mean scores per topic.
// @Summary      Scores by topic
// @Tags         Progress
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   analytics.TopicScore
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/progress/topics [get]
func (h *Handler) topicScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.progress.TopicScores(r.Context(), r.PathValue("userID"))
	if h.handleError(w, err, "topic scores") {
		return
	}
	respondJSON(w, http.StatusOK, scores)
}

// syllabusOverview returns the progress-annotated syllabus.
// @Summary      Syllabus progress
// @Description  Hierarchical completion per paper, topic and subtopic. Malformed syllabus nodes are listed under issues.
// @Tags         Progress
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  analytics.Overview
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/progress/syllabus [get]
func (h *Handler) syllabusOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.progress.SyllabusOverview(r.Context(), r.PathValue("userID"))
	if h.handleError(w, err, "syllabus progress") {
		return
	}
	respondJSON(w, http.StatusOK, ov)
}

// topicDetail drills into one topic.
// @Summary      Topic detail
// @Tags         Progress
// @Produce      json
// @Param        userID   path      string  true  "User ID"
// @Param        topicID  path      string  true  "Topic ID"
// @Success      200      {object}  analytics.TopicDetail
// @Failure      404      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /users/{userID}/progress/syllabus/topics/{topicID} [get]
func (h *Handler) topicDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.progress.TopicDetail(r.Context(), r.PathValue("userID"), r.PathValue("topicID"))
	if h.handleError(w, err, "topic") {
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// strengthAnalysis buckets topics by mastery level.
// @Summary      Strengths and weaknesses
// @Tags         Progress
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  analytics.StrengthAnalysis
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/progress/strengths [get]
func (h *Handler) strengthAnalysis(w http.ResponseWriter, r *http.Request) {
	sa, err := h.progress.StrengthAnalysis(r.Context(), r.PathValue("userID"))
	if h.handleError(w, err, "strength analysis") {
		return
	}
	respondJSON(w, http.StatusOK, sa)
}

// timeline returns daily activity for the last N days.
// @Summary      Performance timeline
// @Tags         Progress
// @Produce      json
// @Param        userID  path      string  true   "User ID"
// @Param        days    query     int     false  "Window in days (7, 30, 90 or any value up to 3660)"  default(30)
// @Param        tz      query     string  false  "IANA time zone, e.g. Asia/Kolkata"
// @Success      200     {object}  TimelineResponse
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/progress/timeline [get]
func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", analytics.DefaultWindow)
	if err != nil {
		respondError(w, http.StatusBadRequest, "days must be an integer")
		return
	}
	loc, err := queryLocation(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown time zone")
		return
	}

	buckets, err := h.progress.Timeline(r.Context(), r.PathValue("userID"), days, loc)
	if h.handleError(w, err, "timeline") {
		return
	}
	respondJSON(w, http.StatusOK, TimelineResponse{
		Days:     days,
		Timezone: h.zoneName(loc),
		Timeline: buckets,
	})
}

// streak returns the current practice streak.
// @Summary      Practice streak
// @Tags         Progress
// @Produce      json
// @Param        userID  path      string  true   "User ID"
// @Param        tz      query     string  false  "IANA time zone, e.g. Asia/Kolkata"
// @Success      200     {object}  StreakResponse
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/progress/streak [get]
func (h *Handler) streak(w http.ResponseWriter, r *http.Request) {
	loc, err := queryLocation(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown time zone")
		return
	}
	userID := r.PathValue("userID")

	n, err := h.progress.Streak(r.Context(), userID, loc)
	if h.handleError(w, err, "streak") {
		return
	}
	respondJSON(w, http.StatusOK, StreakResponse{
		UserID:        userID,
		CurrentStreak: n,
		Timezone:      h.zoneName(loc),
	})
}

// recommendations returns prioritised study suggestions.
// @Summary      Study recommendations
// @Tags         Progress
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   analytics.Recommendation
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/progress/recommendations [get]
func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.progress.Recommendations(r.Context(), r.PathValue("userID"))
	if h.handleError(w, err, "recommendations") {
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// similarityStats aggregates topper comparisons.
// @Summary      Similarity statistics
// @Tags         Similarity
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  analytics.SimilarityStats
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/similarity/stats [get]
func (h *Handler) similarityStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.progress.SimilarityStats(r.Context(), r.PathValue("userID"))
	if h.handleError(w, err, "similarity stats") {
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// similarityHistory lists the latest topper comparisons.
// @Summary      Similarity history
// @Tags         Similarity
// @Produce      json
// @Param        userID  path      string  true   "User ID"
// @Param        limit   query     int     false  "Maximum entries"  default(10)
// @Success      200     {array}   analytics.HistoryEntry
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/similarity/history [get]
func (h *Handler) similarityHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", analytics.DefaultHistoryLimit)
	if err != nil || limit < 1 {
		respondError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}
	history, err := h.progress.SimilarityHistory(r.Context(), r.PathValue("userID"), limit)
	if h.handleError(w, err, "similarity history") {
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (h *Handler) zoneName(loc *time.Location) string {
	if loc == nil {
		return h.progress.Location().String()
	}
	return loc.String()
}
