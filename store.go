package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/body-comp-api/bodycomp"
)

var errAssessmentNotFound = errors.New("assessment not found")

// assessmentStore persists assessments. Records are append-only: there is no
// update, a correction is a new Insert.
type assessmentStore interface {
	Insert(ctx context.Context, a bodycomp.Assessment) (bodycomp.Assessment, error)
	// Get returns errAssessmentNotFound when id does not exist for subjectID.
	Get(ctx context.Context, subjectID, id string) (bodycomp.Assessment, error)
	// ListBySubject returns the subject's records in insertion order.
	ListBySubject(ctx context.Context, subjectID string) ([]bodycomp.Assessment, error)
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, log *zap.Logger, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Error("query failed", zap.String("fn", "queryOne"), zap.Error(err))
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Error("scan failed", zap.String("fn", "queryOne"), zap.Error(err))
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, pool *pgxpool.Pool, log *zap.Logger, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Error("query failed", zap.String("fn", "queryMany"), zap.Error(err))
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Error("scan failed", zap.String("fn", "queryMany"), zap.Error(err))
	}
	return results, err
}

/* ─── Postgres store ──────────────────────────────────────────────────── */

type pgAssessmentStore struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func newPGAssessmentStore(db *pgxpool.Pool, log *zap.Logger) *pgAssessmentStore {
	return &pgAssessmentStore{db: db, log: log}
}

const insertAssessmentSQL = `
INSERT INTO assessments (
	id, subject_id, taken_at,
	age, height_cm, weight_kg, bmi, gender, fat_method, tmb_method,
	body_density, body_fat_percent, muscle_mass_percent, visceral_fat,
	metabolic_age, bmr, maintenance_calories,
	muscle_mass_estimated, visceral_fat_estimated, metabolic_age_estimated,
	chest, waist, abdomen, hips,
	arm_right, arm_left, thigh_right, thigh_left, calf_right, calf_left,
	sf_chest, sf_axillary, sf_triceps, sf_subscapular, sf_abdominal, sf_suprailiac, sf_thigh,
	strategic_report, motivational_report
) VALUES (
	@id, @subjectID, @takenAt,
	@age, @heightCM, @weightKG, @bmi, @gender, @fatMethod, @tmbMethod,
	@bodyDensity, @bodyFatPercent, @muscleMassPercent, @visceralFat,
	@metabolicAge, @bmr, @maintenanceCalories,
	@muscleMassEstimated, @visceralFatEstimated, @metabolicAgeEstimated,
	@chest, @waist, @abdomen, @hips,
	@armRight, @armLeft, @thighRight, @thighLeft, @calfRight, @calfLeft,
	@sfChest, @sfAxillary, @sfTriceps, @sfSubscapular, @sfAbdominal, @sfSuprailiac, @sfThigh,
	@strategicReport, @motivationalReport
)
RETURNING *`

func (s *pgAssessmentStore) Insert(ctx context.Context, a bodycomp.Assessment) (bodycomp.Assessment, error) {
	row, err := queryOne[assessmentRow](ctx, s.db, s.log, insertAssessmentSQL, assessmentArgs(a))
	if err != nil {
		return bodycomp.Assessment{}, fmt.Errorf("insert assessment: %w", err)
	}
	return row.toAssessment(), nil
}

func (s *pgAssessmentStore) Get(ctx context.Context, subjectID, id string) (bodycomp.Assessment, error) {
	row, err := queryOne[assessmentRow](ctx, s.db, s.log,
		`SELECT * FROM assessments WHERE id = @id AND subject_id = @subjectID`,
		pgx.NamedArgs{"id": id, "subjectID": subjectID})
	if errors.Is(err, pgx.ErrNoRows) {
		return bodycomp.Assessment{}, errAssessmentNotFound
	}
	if err != nil {
		return bodycomp.Assessment{}, fmt.Errorf("get assessment: %w", err)
	}
	return row.toAssessment(), nil
}

func (s *pgAssessmentStore) ListBySubject(ctx context.Context, subjectID string) ([]bodycomp.Assessment, error) {
	rows, err := queryMany[assessmentRow](ctx, s.db, s.log,
		`SELECT * FROM assessments WHERE subject_id = @subjectID ORDER BY seq ASC`,
		pgx.NamedArgs{"subjectID": subjectID})
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	out := make([]bodycomp.Assessment, len(rows))
	for i, r := range rows {
		out[i] = r.toAssessment()
	}
	return out, nil
}
