package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lg/body-comp-api/bodycomp"
)

// previewAssessment handles POST /api/assessments/preview.
// Runs the full pipeline over the raw input and returns the result without
// storing anything, so a form can show live results while the coach types.
// Body: { "input": {...raw fields}, "activity_level"? }.
func (h *Handler) previewAssessment(c *gin.Context) {
	var req assessmentInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := previewResponse{assessmentView: newAssessmentView(bodycomp.Build("", "", h.now(), req.Input))}
	if req.ActivityLevel != "" {
		if _, ok := bodycomp.ActivityMultipliers[req.ActivityLevel]; !ok {
			apiError(c, http.StatusBadRequest, "invalid activity_level")
			return
		}
		tdee := bodycomp.TDEE(resp.Assessment.BMR, req.ActivityLevel)
		resp.ActivityLevel = req.ActivityLevel
		resp.TDEE = &tdee
	}
	c.JSON(http.StatusOK, resp)
}

// createAssessment handles POST /api/subjects/:subjectID/assessments.
// Body: { "input": {...raw fields}, "taken_at"?, "strategic_report"?, "motivational_report"? }.
// Always appends a new record; existing records are never edited.
func (h *Handler) createAssessment(c *gin.Context) {
	subjectID := c.Param("subjectID")

	var req createAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Input) == 0 {
		apiError(c, http.StatusBadRequest, "input is required")
		return
	}

	at := h.now()
	if req.TakenAt != nil {
		at = req.TakenAt.UTC()
	}

	a := bodycomp.Build(subjectID, h.newID(), at, req.Input)
	a.StrategicReport = req.StrategicReport
	a.MotivationalReport = req.MotivationalReport

	saved, err := h.store.Insert(c.Request.Context(), a)
	if err != nil {
		h.log.Error("insert assessment failed", zap.String("subject_id", subjectID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to save assessment")
		return
	}

	h.log.Info("assessment created",
		zap.String("subject_id", subjectID),
		zap.String("assessment_id", saved.ID),
		zap.String("fat_method", string(saved.FatMethod)))
	c.JSON(http.StatusCreated, newAssessmentView(saved))
}

// listAssessments handles GET /api/subjects/:subjectID/assessments.
// Returns the subject's records newest first; an empty array (not null) when
// there are none.
func (h *Handler) listAssessments(c *gin.Context) {
	series, ok := h.loadSeries(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, series.NewestFirst())
}

// getAssessment handles GET /api/subjects/:subjectID/assessments/:id.
func (h *Handler) getAssessment(c *gin.Context) {
	subjectID := c.Param("subjectID")
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		apiError(c, http.StatusNotFound, "assessment not found")
		return
	}

	a, err := h.store.Get(c.Request.Context(), subjectID, id)
	if errors.Is(err, errAssessmentNotFound) {
		apiError(c, http.StatusNotFound, "assessment not found")
		return
	}
	if err != nil {
		h.log.Error("get assessment failed", zap.String("assessment_id", id), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch assessment")
		return
	}

	c.JSON(http.StatusOK, newAssessmentView(a))
}

// getTrend handles GET /api/subjects/:subjectID/trend.
// Compares the current record with the previous and the initial one, and
// labels the current record. A subject with no records gets count 0 and nulls.
func (h *Handler) getTrend(c *gin.Context) {
	series, ok := h.loadSeries(c)
	if !ok {
		return
	}

	resp := trendResponse{TrendReport: bodycomp.Analyze(series, h.polarity)}
	if cur := resp.Current; cur != nil {
		cls := bodycomp.Summarize(*cur)
		sym := bodycomp.ScoreSymmetry(cur.BilateralGirths)
		resp.Classification = &cls
		resp.Symmetry = &sym
	}
	c.JSON(http.StatusOK, resp)
}

// getChart handles GET /api/subjects/:subjectID/chart?metric=weight.
// Points are oldest first; records without the metric come back with a null
// value so the client can draw a gap.
func (h *Handler) getChart(c *gin.Context) {
	metric := c.DefaultQuery("metric", string(bodycomp.MetricWeight))
	if !bodycomp.IsValidMetric(metric) {
		apiError(c, http.StatusBadRequest, "unknown metric")
		return
	}

	series, ok := h.loadSeries(c)
	if !ok {
		return
	}

	m := bodycomp.Metric(metric)
	c.JSON(http.StatusOK, chartResponse{Metric: m, Points: bodycomp.ChartPoints(series, m)})
}

// loadSeries fetches the subject's records and orders them. Writes the error
// response itself and returns false on failure.
func (h *Handler) loadSeries(c *gin.Context) (bodycomp.Series, bool) {
	subjectID := c.Param("subjectID")
	records, err := h.store.ListBySubject(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("list assessments failed", zap.String("subject_id", subjectID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch assessments")
		return bodycomp.Series{}, false
	}
	return bodycomp.NewSeries(records), true
}
