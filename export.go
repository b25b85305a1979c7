package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"lg/body-comp-api/bodycomp"
)

const exportSheet = "Assessments"

// metricHeaders are the column titles for each trendable metric.
var metricHeaders = map[bodycomp.Metric]string{
	bodycomp.MetricWeight:       "Weight (kg)",
	bodycomp.MetricBMI:          "BMI",
	bodycomp.MetricBodyFat:      "Body fat (%)",
	bodycomp.MetricMuscleMass:   "Muscle mass (%)",
	bodycomp.MetricVisceralFat:  "Visceral fat",
	bodycomp.MetricMetabolicAge: "Metabolic age",
	bodycomp.MetricBMR:          "BMR (kcal)",
	bodycomp.MetricChest:        "Chest (cm)",
	bodycomp.MetricWaist:        "Waist (cm)",
	bodycomp.MetricAbdomen:      "Abdomen (cm)",
	bodycomp.MetricHips:         "Hips (cm)",
	bodycomp.MetricArmRight:     "Arm R (cm)",
	bodycomp.MetricArmLeft:      "Arm L (cm)",
	bodycomp.MetricThighRight:   "Thigh R (cm)",
	bodycomp.MetricThighLeft:    "Thigh L (cm)",
	bodycomp.MetricCalfRight:    "Calf R (cm)",
	bodycomp.MetricCalfLeft:     "Calf L (cm)",
}

// exportHeaders returns the header row: identity columns, one column per
// metric in AllMetrics order, then the derived columns.
func exportHeaders() []string {
	headers := []string{"Date", "Fat method", "BMR formula", "Height (cm)", "Age"}
	for _, m := range bodycomp.AllMetrics {
		headers = append(headers, metricHeaders[m])
	}
	return append(headers, "Maintenance (kcal)", "BMI status", "Body fat status", "Symmetry score", "Estimated")
}

// exportRow lays out one assessment in exportHeaders order. Unknown values
// are nil so the cell stays blank.
func exportRow(a bodycomp.Assessment) []any {
	row := []any{
		a.Timestamp.Format("2006-01-02 15:04"),
		string(a.FatMethod),
		string(a.BMRFormula),
		cellValue(a.Height),
		cellValue(a.Age),
	}
	for _, m := range bodycomp.AllMetrics {
		row = append(row, cellValue(a.Metric(m).Round(2)))
	}

	cls := bodycomp.Summarize(a)
	sym := bodycomp.ScoreSymmetry(a.BilateralGirths)
	return append(row,
		cellValue(a.MaintenanceCalories.Round(0)),
		string(cls.BMI),
		string(cls.BodyFat),
		cellValue(sym.Score),
		estimatedLabel(a.Estimated),
	)
}

func cellValue(v bodycomp.Value) any {
	if f, ok := v.Get(); ok {
		return f
	}
	return nil
}

func estimatedLabel(e bodycomp.Estimated) string {
	var parts []string
	if e.MuscleMass {
		parts = append(parts, "muscle mass")
	}
	if e.VisceralFat {
		parts = append(parts, "visceral fat")
	}
	if e.MetabolicAge {
		parts = append(parts, "metabolic age")
	}
	return strings.Join(parts, ", ")
}

// buildAssessmentWorkbook writes the series to a single-sheet xlsx, oldest
// record first so the sheet reads as a timeline.
func buildAssessmentWorkbook(s bodycomp.Series) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := exportHeaders()
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("set header style: %w", err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, fmt.Errorf("convert column number: %w", err)
	}
	if err := f.SetColWidth(exportSheet, "A", lastCol, 14); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	for i, a := range s.OldestFirst() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		row := exportRow(a)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// exportAssessments handles GET /api/subjects/:subjectID/assessments/export.
func (h *Handler) exportAssessments(c *gin.Context) {
	subjectID := c.Param("subjectID")

	records, err := h.store.ListBySubject(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("list assessments failed", zap.String("subject_id", subjectID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch assessments")
		return
	}

	data, err := buildAssessmentWorkbook(bodycomp.NewSeries(records))
	if err != nil {
		h.log.Error("export failed", zap.String("subject_id", subjectID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to build export")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=assessments-%s.xlsx", sanitizeFilename(subjectID)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// sanitizeFilename keeps letters, digits, dash and underscore.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
