package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lg/body-comp-api/bodycomp"
)

// setupReportTest starts a mock OpenAI server and returns a writer pointed at
// it, a function to set the mock response, and the last request received.
func setupReportTest(t *testing.T, apiKey string) (*openAIReportWriter, func(int, interface{}), *capturedRequest) {
	var mockStatus int
	var mockBody interface{}
	captured := &capturedRequest{}

	mockOpenAI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.hits++
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mockStatus)
		json.NewEncoder(w).Encode(mockBody)
	}))
	t.Cleanup(mockOpenAI.Close)

	writer := newOpenAIReportWriter(mockOpenAI.URL, apiKey, "gpt-4o-mini", zap.NewNop())
	setMock := func(status int, body interface{}) {
		mockStatus = status
		mockBody = body
	}
	return writer, setMock, captured
}

type capturedRequest struct {
	hits int
	path string
	auth string
	body openAIRequest
}

// openAIChatResponse wraps a content string in the OpenAI chat completions
// response shape (choices[0].message.content).
func openAIChatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"content": content,
				},
			},
		},
	}
}

func reportAssessment(weight string) bodycomp.Assessment {
	return bodycomp.Build("s1", "a1", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), bodycomp.RawInput{
		bodycomp.FieldWeight:        weight,
		bodycomp.FieldHeight:        "175",
		bodycomp.FieldAge:           "30",
		bodycomp.FieldBodyFatManual: "20",
	})
}

func TestReportWriter_Strategic(t *testing.T) {
	writer, setMock, captured := setupReportTest(t, "test-key")
	setMock(http.StatusOK, openAIChatResponse("  Focus on lower-body strength.\n"))

	prev := reportAssessment("80")
	text, err := writer.Write(context.Background(), reportStrategic, reportAssessment("78"), &prev)
	require.NoError(t, err)
	assert.Equal(t, "Focus on lower-body strength.", text)

	assert.Equal(t, "/v1/chat/completions", captured.path)
	assert.Equal(t, "Bearer test-key", captured.auth)
	assert.Equal(t, "gpt-4o-mini", captured.body.Model)
	require.Len(t, captured.body.Messages, 2)
	assert.Equal(t, strategicSystemPrompt, captured.body.Messages[0].Content)
	assert.InDelta(t, 0.3, captured.body.Temperature, 1e-9)

	var payload map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(captured.body.Messages[1].Content), &payload))
	assert.Equal(t, 78.0, payload["current"]["weight"])
	assert.Equal(t, 80.0, payload["previous"]["weight"])
	assert.Equal(t, "Average", payload["classification"]["body_fat"])
}

func TestReportWriter_MotivationalWithoutPrevious(t *testing.T) {
	writer, setMock, captured := setupReportTest(t, "test-key")
	setMock(http.StatusOK, openAIChatResponse("Great start!"))

	text, err := writer.Write(context.Background(), reportMotivational, reportAssessment("78"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Great start!", text)
	assert.Equal(t, motivationalSystemPrompt, captured.body.Messages[0].Content)
	assert.Contains(t, captured.body.Messages[1].Content, `"previous":null`)
}

func TestReportWriter_Failures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    interface{}
		wantErr error
	}{
		{"blank content", http.StatusOK, openAIChatResponse("   "), errEmptyReport},
		{"no choices", http.StatusOK, map[string]interface{}{"choices": []interface{}{}}, nil},
		{"bad request", http.StatusBadRequest, map[string]interface{}{"error": map[string]string{"message": "bad"}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writer, setMock, _ := setupReportTest(t, "test-key")
			setMock(tc.status, tc.body)

			text, err := writer.Write(context.Background(), reportStrategic, reportAssessment("78"), nil)
			require.Error(t, err)
			assert.Empty(t, text)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestReportWriter_NoAPIKey(t *testing.T) {
	writer, setMock, captured := setupReportTest(t, "")
	setMock(http.StatusOK, openAIChatResponse("unused"))

	_, err := writer.Write(context.Background(), reportStrategic, reportAssessment("78"), nil)
	assert.ErrorIs(t, err, errReportUnavailable)
	assert.Equal(t, 0, captured.hits)
}
