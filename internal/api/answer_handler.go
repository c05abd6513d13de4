package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/similarity"
	"github.com/examprep/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswerRequest struct {
	QuestionID  string     `json:"question_id" validate:"required" example:"pyq-2019-p1-q3"`
	Topic       string     `json:"topic" validate:"required" example:"p1-thinkers"`
	Subtopic    *string    `json:"subtopic,omitempty" validate:"omitempty,min=1" example:"p1-weber"`
	Text        string     `json:"answer_text" validate:"required"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("answer_text cannot be blank")
	}
	return nil
}

type AnswerResponse struct {
	ID          string             `json:"id" example:"a1b2c3d4e5f6g7h8"`
	UserID      string             `json:"user_id" example:"u1"`
	QuestionID  string             `json:"question_id" example:"pyq-2019-p1-q3"`
	Topic       string             `json:"topic" example:"p1-thinkers"`
	Subtopic    *string            `json:"subtopic" example:"p1-weber"`
	Text        string             `json:"answer_text"`
	SubmittedAt time.Time          `json:"submitted_at"`
	Status      string             `json:"status" example:"pending"`
	Evaluation  *answer.Evaluation `json:"evaluation"`
	GradeError  *string            `json:"grade_error,omitempty"`
}

func toAnswerResponse(a answer.Answer) AnswerResponse {
	status := "pending"
	if a.Evaluated() {
		status = "evaluated"
	}
	return AnswerResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		QuestionID:  a.QuestionID,
		Topic:       a.Topic,
		Subtopic:    a.Subtopic,
		Text:        a.Text,
		SubmittedAt: a.SubmittedAt,
		Status:      status,
		Evaluation:  a.Evaluation,
		GradeError:  a.GradeError,
	}
}

type EvaluationRequest struct {
	Overall     *float64   `json:"overall_score,omitempty" validate:"omitempty,min=0,max=10" example:"7.5"`
	Structure   *float64   `json:"structure_score" validate:"required,min=0,max=10" example:"7"`
	Content     *float64   `json:"content_score" validate:"required,min=0,max=10" example:"8"`
	Depth       *float64   `json:"sociological_depth_score" validate:"required,min=0,max=10" example:"7.5"`
	Feedback    string     `json:"feedback" example:"Bring in Weber's ideal types."`
	EvaluatedAt *time.Time `json:"evaluated_at,omitempty"`
}

// evaluation builds the domain value; a missing overall score is the mean
// of the three dimensions.
func (r *EvaluationRequest) evaluation(now time.Time) answer.Evaluation {
	overall := (*r.Structure + *r.Content + *r.Depth) / 3
	if r.Overall != nil {
		overall = *r.Overall
	}
	at := now
	if r.EvaluatedAt != nil {
		at = *r.EvaluatedAt
	}
	return answer.Evaluation{
		Scores: answer.Scores{
			Overall:   overall,
			Structure: *r.Structure,
			Content:   *r.Content,
			Depth:     *r.Depth,
		},
		Feedback:    r.Feedback,
		EvaluatedAt: at.UTC(),
	}
}

type SimilarityRequest struct {
	TopperID  string             `json:"topper_answer_id" validate:"required" example:"topper-2019-p1-q3"`
	Scores    map[string]float64 `json:"similarity_scores" validate:"required,min=1,dive,keys,required,endkeys,min=0,max=1"`
	Feedback  string             `json:"feedback"`
	CreatedAt *time.Time         `json:"created_at,omitempty"`
}

type SimilarityResponse struct {
	ID        string             `json:"id" example:"a1b2c3d4e5f6g7h8"`
	AnswerID  string             `json:"user_answer_id" example:"a1b2c3d4e5f6g7h8"`
	TopperID  string             `json:"topper_answer_id" example:"topper-2019-p1-q3"`
	Scores    map[string]float64 `json:"similarity_scores"`
	Feedback  string             `json:"feedback"`
	CreatedAt time.Time          `json:"created_at"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitAnswer stores a new answer and queues it for grading.
// @Summary      Submit an answer
// @Description  Store a learner's answer as pending. When a grader is configured it is graded asynchronously.
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Param        userID  path      string               true  "User ID"
// @Param        body    body      SubmitAnswerRequest  true  "Answer to submit"
// @Success      201     {object}  AnswerResponse
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userID")

	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	submittedAt := time.Now().UTC()
	if req.SubmittedAt != nil {
		submittedAt = req.SubmittedAt.UTC()
	}
	a := answer.New(userID, req.QuestionID, req.Topic, req.Subtopic, req.Text, submittedAt)
	if h.handleError(w, h.store.SaveAnswer(ctx, a), "answer") {
		return
	}

	if h.grading != nil {
		if err := h.grading.SubmitGrading(ctx, *a); err != nil {
			// The answer stays pending; an evaluation can still be posted.
			h.logger.Warn("answer stored without grading", "answer_id", a.ID, "error", err)
		}
	}

	respondJSON(w, http.StatusCreated, toAnswerResponse(*a))
}

// gradeAnswer queues a pending answer for grading again.
// @Summary      Retry grading
// @Description  Queue a pending answer, for example one whose grading failed, on the grading workers.
// @Tags         Answers
// @Produce      json
// @Param        answerID  path      string  true  "Answer ID"
// @Success      202       {object}  AnswerResponse
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string  "already evaluated"
// @Failure      503       {object}  map[string]string  "grading disabled or queue full"
// @Failure      500       {object}  map[string]string
// @Router       /answers/{answerID}/grade [post]
func (h *Handler) gradeAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.grading == nil {
		respondError(w, http.StatusServiceUnavailable, "grading is not configured")
		return
	}

	a, err := h.store.GetAnswer(ctx, r.PathValue("answerID"))
	if h.handleError(w, err, "answer") {
		return
	}
	if err := h.grading.SubmitGrading(ctx, *a); err != nil {
		if errors.Is(err, store.ErrAlreadyEvaluated) {
			h.handleError(w, err, "answer")
			return
		}
		respondError(w, http.StatusServiceUnavailable, "grading queue unavailable")
		return
	}

	respondJSON(w, http.StatusAccepted, toAnswerResponse(*a))
}

// listAnswers lists a learner's answers.
// @Summary      List answers
// @Tags         Answers
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   AnswerResponse
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/answers [get]
func (h *Handler) listAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := h.store.ListAnswers(r.Context(), r.PathValue("userID"))
	if h.handleError(w, err, "answers") {
		return
	}
	resp := make([]AnswerResponse, 0, len(answers))
	for _, a := range answers {
		resp = append(resp, toAnswerResponse(a))
	}
	respondJSON(w, http.StatusOK, resp)
}

// recordEvaluation attaches an externally produced evaluation to an answer.
// @Summary      Record an evaluation
// @Description  Attach scores to a pending answer. An answer is evaluated at most once.
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Param        answerID  path      string             true  "Answer ID"
// @Param        body      body      EvaluationRequest  true  "Scores on a 0-10 scale"
// @Success      200       {object}  AnswerResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string  "already evaluated"
// @Failure      500       {object}  map[string]string
// @Router       /answers/{answerID}/evaluation [post]
func (h *Handler) recordEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	answerID := r.PathValue("answerID")

	var req EvaluationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	ev := req.evaluation(time.Now())
	if err := ev.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleError(w, h.store.SaveEvaluation(ctx, answerID, ev), "answer") {
		return
	}
	a, err := h.store.GetAnswer(ctx, answerID)
	if h.handleError(w, err, "answer") {
		return
	}
	respondJSON(w, http.StatusOK, toAnswerResponse(*a))
}

// recordSimilarity stores a topper comparison for an answer.
// @Summary      Record a similarity analysis
// @Description  Store the comparison of an answer with a topper's answer. Scores are on a 0-1 scale; dimension names are free-form and "overall" feeds the average similarity.
// @Tags         Similarity
// @Accept       json
// @Produce      json
// @Param        answerID  path      string             true  "Answer ID"
// @Param        body      body      SimilarityRequest  true  "Similarity scores"
// @Success      201       {object}  SimilarityResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /answers/{answerID}/similarity [post]
func (h *Handler) recordSimilarity(w http.ResponseWriter, r *http.Request) {
	answerID := r.PathValue("answerID")

	var req SimilarityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UTC()
	}
	an := similarity.New(answerID, req.TopperID, req.Scores, req.Feedback, createdAt)
	if err := an.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleError(w, h.store.SaveSimilarityAnalysis(r.Context(), an), "answer") {
		return
	}
	respondJSON(w, http.StatusCreated, SimilarityResponse{
		ID:        an.ID,
		AnswerID:  an.AnswerID,
		TopperID:  an.TopperID,
		Scores:    an.Scores,
		Feedback:  an.Feedback,
		CreatedAt: an.CreatedAt,
	})
}
