package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/examprep/backend/internal/domain/answer"
)

// OllamaGrader grades answers by calling an OpenAI-compatible LLM endpoint
// (Ollama, LM Studio, vLLM, etc.).
type OllamaGrader struct {
	url    string       // e.g. "http://localhost:11434"
	model  string       // e.g. "qwen3-8b"
	client *http.Client // reused across calls
	now    func() time.Time
}

// Compile-time check: *OllamaGrader satisfies the Grader interface.
var _ Grader = (*OllamaGrader)(nil)

// GradeResult is the structured output requested from the LLM.
type GradeResult struct {
	Structure float64  `json:"structure_score"`
	Content   float64  `json:"content_score"`
	Depth     float64  `json:"sociological_depth_score"`
	Overall   *float64 `json:"overall_score"`
	Feedback  string   `json:"feedback"`
}

// GradeError is returned when grading fails so the caller can distinguish
// between "LLM returned a bad grade" and "LLM was unreachable."
type GradeError struct {
	Reason  string
	Wrapped error
}

func (e *GradeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("grading failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("grading failed: %s", e.Reason)
}

func (e *GradeError) Unwrap() error {
	return e.Wrapped
}

// NewOllamaGrader creates a grader that calls the given LLM endpoint.
func NewOllamaGrader(url, model string) *OllamaGrader {
	return &OllamaGrader{
		url:   strings.TrimRight(url, "/"),
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		now: time.Now,
	}
}

// ============================================================================
// Grader interface
// ============================================================================

const maxRetries = 2

// GradeAnswer sends the answer to the LLM and parses the scores.
// It retries once on a failed call or an unusable response.
func (g *OllamaGrader) GradeAnswer(ctx context.Context, a answer.Answer) (answer.Evaluation, error) {
	prompt := buildPrompt(a)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return answer.Evaluation{}, &GradeError{Reason: "cancelled", Wrapped: err}
		}

		result, err := g.callLLM(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		ev, err := parseEvaluation(result)
		if err != nil {
			lastErr = err
			continue
		}
		ev.EvaluatedAt = g.now().UTC()
		return ev, nil
	}

	return answer.Evaluation{}, &GradeError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// parseEvaluation extracts the grade object from raw model output. A missing
// overall score is the mean of the three dimensions.
func parseEvaluation(raw string) (answer.Evaluation, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return answer.Evaluation{}, &GradeError{Reason: "no JSON object found in LLM response"}
	}

	var gr GradeResult
	if err := json.Unmarshal([]byte(jsonStr), &gr); err != nil {
		return answer.Evaluation{}, &GradeError{Reason: "invalid JSON from LLM", Wrapped: err}
	}

	overall := (gr.Structure + gr.Content + gr.Depth) / 3
	if gr.Overall != nil {
		overall = *gr.Overall
	}
	ev := answer.Evaluation{
		Scores: answer.Scores{
			Overall:   overall,
			Structure: gr.Structure,
			Content:   gr.Content,
			Depth:     gr.Depth,
		},
		Feedback: strings.TrimSpace(gr.Feedback),
	}
	if err := ev.Validate(); err != nil {
		return answer.Evaluation{}, &GradeError{Reason: "scores out of range", Wrapped: err}
	}
	return ev, nil
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const systemPrompt = "You are an expert Sociology examiner with deep knowledge of sociological theories, thinkers and concepts."

// callLLM sends a single request to the LLM and returns the raw text response.
func (g *OllamaGrader) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string.
// It handles nested braces correctly and skips braces inside quoted strings.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// Prompt
// ============================================================================

func buildPrompt(a answer.Answer) string {
	area := a.Topic
	if sub := a.SubtopicID(); sub != "" {
		area += " / " + sub
	}

	return fmt.Sprintf(`/no_think
Evaluate the following exam answer against the standards of the Sociology optional paper.

QUESTION ID: %s
SYLLABUS AREA: %s

ANSWER:
%s

CRITERIA (each scored 0-10):
1. Structure: introduction, body organization, conclusion, flow
2. Content: completeness, accuracy, examples, relevance
3. Sociological depth: theoretical understanding, concepts, analytical approach

Respond with ONLY this JSON, no explanation, no markdown:
{"structure_score": 0, "content_score": 0, "sociological_depth_score": 0, "overall_score": 0, "feedback": "specific suggestions"}`,
		a.QuestionID, area, strings.TrimSpace(a.Text))
}
