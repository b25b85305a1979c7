// CLI tool to run a body-composition assessment from the terminal.
// Prompts for each raw field (blank = not measured), prints the computed
// assessment with its classification and symmetry score as JSON, and
// optionally saves it through the running API.
// Usage: go run ./cmd/assess [-subject id] [-save] [-api http://localhost:3000]
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"lg/body-comp-api/bodycomp"
)

type prompt struct {
	field string
	label string
}

var profilePrompts = []prompt{
	{bodycomp.FieldAge, "Age (years)"},
	{bodycomp.FieldHeight, "Height (cm)"},
	{bodycomp.FieldWeight, "Weight (kg)"},
	{bodycomp.FieldGender, "Gender (male/female)"},
	{bodycomp.FieldFatMethod, "Fat method (Bioimpedance/Skinfolds/Tape)"},
	{bodycomp.FieldBMRFormula, "BMR formula (Mifflin-St Jeor/Harris Benedict/Ten Haaf/Cunningham)"},
}

var bioimpedancePrompts = []prompt{
	{bodycomp.FieldBodyFatManual, "Body fat (%)"},
	{bodycomp.FieldMuscleMass, "Muscle mass (%)"},
	{bodycomp.FieldVisceralFat, "Visceral fat level"},
	{bodycomp.FieldMetabolicAge, "Metabolic age"},
}

var skinfoldPrompts = []prompt{
	{bodycomp.FieldSkinfoldChest, "Chest skinfold (mm)"},
	{bodycomp.FieldSkinfoldAxillary, "Axillary skinfold (mm)"},
	{bodycomp.FieldSkinfoldTriceps, "Triceps skinfold (mm)"},
	{bodycomp.FieldSkinfoldSubscapular, "Subscapular skinfold (mm)"},
	{bodycomp.FieldSkinfoldAbdominal, "Abdominal skinfold (mm)"},
	{bodycomp.FieldSkinfoldSuprailiac, "Suprailiac skinfold (mm)"},
	{bodycomp.FieldSkinfoldThigh, "Thigh skinfold (mm)"},
}

var girthPrompts = []prompt{
	{bodycomp.FieldChest, "Chest (cm)"},
	{bodycomp.FieldWaist, "Waist (cm)"},
	{bodycomp.FieldAbdomen, "Abdomen (cm)"},
	{bodycomp.FieldHips, "Hips (cm)"},
	{bodycomp.FieldArmRight, "Right arm (cm)"},
	{bodycomp.FieldArmLeft, "Left arm (cm)"},
	{bodycomp.FieldThighRight, "Right thigh (cm)"},
	{bodycomp.FieldThighLeft, "Left thigh (cm)"},
	{bodycomp.FieldCalfRight, "Right calf (cm)"},
	{bodycomp.FieldCalfLeft, "Left calf (cm)"},
}

type result struct {
	Assessment     bodycomp.Assessment     `json:"assessment"`
	Classification bodycomp.Classification `json:"classification"`
	Symmetry       bodycomp.SymmetryScore  `json:"symmetry"`
}

func main() {
	subjectID := flag.String("subject", "", "subject id (prompted when empty)")
	save := flag.Bool("save", false, "save the assessment through the API")
	apiURL := flag.String("api", "", "API base URL (default $API_URL or http://localhost:3000)")
	flag.Parse()

	// .env is optional here: the tool works offline unless -save is set.
	_ = godotenv.Load()
	if *apiURL == "" {
		*apiURL = os.Getenv("API_URL")
	}
	if *apiURL == "" {
		*apiURL = "http://localhost:3000"
	}

	reader := bufio.NewReader(os.Stdin)
	if *subjectID == "" {
		*subjectID = ask(reader, os.Stdout, "Subject ID")
	}
	raw := readRawInput(reader, os.Stdout)

	a := bodycomp.Build(*subjectID, uuid.New().String(), time.Now().UTC(), raw)
	out, err := json.MarshalIndent(result{
		Assessment:     a,
		Classification: bodycomp.Summarize(a),
		Symmetry:       bodycomp.ScoreSymmetry(a.BilateralGirths),
	}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n%s\n", out)

	if !*save {
		return
	}
	if *subjectID == "" {
		fmt.Fprintln(os.Stderr, "A subject ID is required to save")
		os.Exit(1)
	}
	id, err := saveAssessment(*apiURL, *subjectID, raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving assessment: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nAssessment saved successfully!\n")
	fmt.Printf("  Subject: %s\n", *subjectID)
	fmt.Printf("  ID:      %s\n", id)
}

// readRawInput walks the prompts. Method-specific questions depend on the
// fat method answer.
func readRawInput(r *bufio.Reader, w io.Writer) bodycomp.RawInput {
	raw := bodycomp.RawInput{}
	collect(r, w, raw, profilePrompts)

	switch bodycomp.ParseFatMethod(raw[bodycomp.FieldFatMethod]) {
	case bodycomp.FatMethodSkinfolds:
		collect(r, w, raw, skinfoldPrompts)
	case bodycomp.FatMethodTape:
		collect(r, w, raw, bioimpedancePrompts[:1])
	default:
		collect(r, w, raw, bioimpedancePrompts)
	}

	collect(r, w, raw, girthPrompts)
	return raw
}

func collect(r *bufio.Reader, w io.Writer, raw bodycomp.RawInput, prompts []prompt) {
	for _, p := range prompts {
		if v := ask(r, w, p.label); v != "" {
			raw[p.field] = v
		}
	}
}

func ask(r *bufio.Reader, w io.Writer, label string) string {
	fmt.Fprintf(w, "%s: ", label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

// saveAssessment posts the raw input to the API, which recomputes and stores
// it. Returns the stored id.
func saveAssessment(apiURL, subjectID string, raw bodycomp.RawInput) (string, error) {
	var created result
	var apiErr struct {
		Error string `json:"error"`
	}
	resp, err := resty.New().
		SetBaseURL(strings.TrimRight(apiURL, "/")).
		SetTimeout(15*time.Second).
		R().
		SetPathParam("subjectID", subjectID).
		SetBody(map[string]any{"input": raw}).
		SetResult(&created).
		SetError(&apiErr).
		Post("/api/subjects/{subjectID}/assessments")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("api returned status %d: %s", resp.StatusCode(), apiErr.Error)
	}
	return created.Assessment.ID, nil
}
