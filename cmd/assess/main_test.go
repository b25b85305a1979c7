package main

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/body-comp-api/bodycomp"
)

func answers(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestReadRawInput_Skinfolds(t *testing.T) {
	in := answers(
		"25", "180", "80", "male", "Skinfolds", "",
		"10", "8", "12", "15", "18", "14", "13",
		"", "84", "", "", "36", "34", "", "", "", "",
	)

	raw := readRawInput(in, io.Discard)
	assert.Equal(t, "Skinfolds", raw[bodycomp.FieldFatMethod])
	assert.Equal(t, "13", raw[bodycomp.FieldSkinfoldThigh])
	assert.Equal(t, "84", raw[bodycomp.FieldWaist])
	assert.Equal(t, "34", raw[bodycomp.FieldArmLeft])
	_, asked := raw[bodycomp.FieldBodyFatManual]
	assert.False(t, asked)
	_, blank := raw[bodycomp.FieldBMRFormula]
	assert.False(t, blank, "blank answers are left out")

	a := bodycomp.Build("s1", "a1", time.Now(), raw)
	bf, ok := a.BodyFatPercent.Get()
	require.True(t, ok)
	assert.InDelta(t, 12.5732, bf, 1e-4)
}

func TestReadRawInput_BioimpedanceDefault(t *testing.T) {
	in := answers(
		"30", "175", "70", "", "", "",
		"22", "", "", "",
	)

	raw := readRawInput(in, io.Discard)
	assert.Equal(t, "22", raw[bodycomp.FieldBodyFatManual])
	_, ok := raw[bodycomp.FieldSkinfoldChest]
	assert.False(t, ok)
	// stdin ran out during girths; nothing else is recorded
	assert.Len(t, raw, 4)
}

func TestSaveAssessment(t *testing.T) {
	var gotPath string
	var gotBody map[string]map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"assessment":{"id":"abc-123","subject_id":"s1"}}`))
	}))
	defer srv.Close()

	id, err := saveAssessment(srv.URL, "s1", bodycomp.RawInput{bodycomp.FieldWeight: "80"})
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "/api/subjects/s1/assessments", gotPath)
	assert.Equal(t, "80", gotBody["input"]["weight"])
}

func TestSaveAssessment_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"input is required"}`))
	}))
	defer srv.Close()

	_, err := saveAssessment(srv.URL, "s1", bodycomp.RawInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input is required")
}
