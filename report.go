package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"lg/body-comp-api/bodycomp"
)

type reportKind string

const (
	reportStrategic    reportKind = "strategic"
	reportMotivational reportKind = "motivational"
)

var (
	// errReportUnavailable means no text generator is configured.
	errReportUnavailable = errors.New("report writer not configured")
	errEmptyReport       = errors.New("report writer returned empty text")
)

// reportWriter turns a computed assessment (and optionally the one before it)
// into free text. The text is opaque to the server; callers only check that
// it is non-empty.
type reportWriter interface {
	Write(ctx context.Context, kind reportKind, current bodycomp.Assessment, previous *bodycomp.Assessment) (string, error)
}

/* ─── OpenAI prompt constants ────────────────────────────────────────── */

const strategicSystemPrompt = `You are a sports physiologist writing for a personal trainer.
You receive a JSON body-composition assessment of one client, and sometimes the previous assessment for comparison.
Write a concise technical analysis: current status of body fat, lean mass, visceral fat and metabolic age; what changed since the previous assessment; limb asymmetries worth correcting; and three concrete training or nutrition priorities for the next cycle.
Fields marked in "estimated" were filled with default values, not measured; say so if you rely on them. Null means not measured.
Plain text, no markdown headings, at most 250 words.`

const motivationalSystemPrompt = `You are an encouraging coach writing directly to a client.
You receive a JSON body-composition assessment, and sometimes the previous one for comparison.
Write a short, warm message that celebrates real progress, reframes setbacks constructively and ends with one clear goal for the next assessment.
Never invent numbers. Null means not measured.
Plain text, no markdown, at most 120 words.`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// reportPayload is what the model sees as the user message.
type reportPayload struct {
	Current        bodycomp.Assessment     `json:"current"`
	Previous       *bodycomp.Assessment    `json:"previous"`
	Classification bodycomp.Classification `json:"classification"`
	Symmetry       bodycomp.SymmetryScore  `json:"symmetry"`
}

// openAIReportWriter calls the chat completions API through resty.
type openAIReportWriter struct {
	client *resty.Client
	apiKey string
	model  string
	log    *zap.Logger
}

func newOpenAIReportWriter(baseURL, apiKey, model string, log *zap.Logger) *openAIReportWriter {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json")

	return &openAIReportWriter{client: client, apiKey: apiKey, model: model, log: log}
}

func (w *openAIReportWriter) Write(ctx context.Context, kind reportKind, current bodycomp.Assessment, previous *bodycomp.Assessment) (string, error) {
	if w.apiKey == "" {
		return "", errReportUnavailable
	}

	systemPrompt, temperature := strategicSystemPrompt, 0.3
	if kind == reportMotivational {
		systemPrompt, temperature = motivationalSystemPrompt, 0.7
	}

	payload, err := json.Marshal(reportPayload{
		Current:        current,
		Previous:       previous,
		Classification: bodycomp.Summarize(current),
		Symmetry:       bodycomp.ScoreSymmetry(current.BilateralGirths),
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	var result openAIResponse
	resp, err := w.client.R().
		SetContext(ctx).
		SetAuthToken(w.apiKey).
		SetBody(openAIRequest{
			Model: w.model,
			Messages: []openAIMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: string(payload)},
			},
			Temperature: temperature,
		}).
		SetResult(&result).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	text := strings.TrimSpace(result.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyReport
	}
	w.log.Debug("report written",
		zap.String("kind", string(kind)),
		zap.String("subject_id", current.SubjectID),
		zap.Int("chars", len(text)))
	return text, nil
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// generateReports handles POST /api/subjects/:subjectID/reports.
// Computes an assessment from the raw input without saving it, compares it
// with the subject's latest stored record, and returns both report texts.
// The client saves the assessment together with the texts afterwards.
func (h *Handler) generateReports(c *gin.Context) {
	subjectID := c.Param("subjectID")

	var req assessmentInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	records, err := h.store.ListBySubject(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("list assessments failed", zap.String("subject_id", subjectID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch assessments")
		return
	}
	var previous *bodycomp.Assessment
	if latest, ok := bodycomp.NewSeries(records).Current(); ok {
		previous = &latest
	}

	current := bodycomp.Build(subjectID, "", h.now(), req.Input)

	resp := reportsResponse{Assessment: current}
	for _, kind := range []reportKind{reportStrategic, reportMotivational} {
		text, err := h.reports.Write(c.Request.Context(), kind, current, previous)
		if errors.Is(err, errReportUnavailable) {
			apiError(c, http.StatusServiceUnavailable, "report generation is not configured")
			return
		}
		if err != nil {
			h.log.Error("report failed", zap.String("kind", string(kind)), zap.Error(err))
			apiError(c, http.StatusBadGateway, "report generation failed")
			return
		}
		if kind == reportStrategic {
			resp.StrategicReport = text
		} else {
			resp.MotivationalReport = text
		}
	}

	c.JSON(http.StatusOK, resp)
}
