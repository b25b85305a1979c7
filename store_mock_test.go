package main

import (
	"context"
	"sync"

	"lg/body-comp-api/bodycomp"
)

// memAssessmentStore is an in-memory assessmentStore for handler tests.
// Setting err makes every call fail with it.
type memAssessmentStore struct {
	mu      sync.Mutex
	records []bodycomp.Assessment
	err     error
}

func (s *memAssessmentStore) Insert(_ context.Context, a bodycomp.Assessment) (bodycomp.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return bodycomp.Assessment{}, s.err
	}
	s.records = append(s.records, a)
	return a, nil
}

func (s *memAssessmentStore) Get(_ context.Context, subjectID, id string) (bodycomp.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return bodycomp.Assessment{}, s.err
	}
	for _, a := range s.records {
		if a.SubjectID == subjectID && a.ID == id {
			return a, nil
		}
	}
	return bodycomp.Assessment{}, errAssessmentNotFound
}

func (s *memAssessmentStore) ListBySubject(_ context.Context, subjectID string) ([]bodycomp.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []bodycomp.Assessment
	for _, a := range s.records {
		if a.SubjectID == subjectID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeReportWriter returns canned text per kind and records what it was given.
type fakeReportWriter struct {
	mu    sync.Mutex
	texts map[reportKind]string
	err   error
	calls []reportCall
}

type reportCall struct {
	kind     reportKind
	current  bodycomp.Assessment
	previous *bodycomp.Assessment
}

func (w *fakeReportWriter) Write(_ context.Context, kind reportKind, current bodycomp.Assessment, previous *bodycomp.Assessment) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, reportCall{kind: kind, current: current, previous: previous})
	if w.err != nil {
		return "", w.err
	}
	return w.texts[kind], nil
}
