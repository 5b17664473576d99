package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChicagoDave/raccoonshelter/pkg/cost"
	"github.com/ChicagoDave/raccoonshelter/pkg/spec"
	"github.com/ChicagoDave/raccoonshelter/pkg/validation"
)

func newTestServer(t *testing.T, mutate func(*spec.ShelterSpec)) http.Handler {
	t.Helper()
	s, err := spec.Default()
	if err != nil {
		t.Fatal(err)
	}
	if mutate != nil {
		mutate(s)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(s, 0, log).Routes()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, newTestServer(t, nil), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestGetCost(t *testing.T) {
	w := get(t, newTestServer(t, nil), "/api/cost")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var report cost.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if len(report.Entries) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(report.Entries))
	}
	if report.Entries[0].Name != cost.CategoryEuthanization {
		t.Errorf("first entry = %q, want sorted order", report.Entries[0].Name)
	}
	sum := report.Summary
	if math.Abs(sum.Yearly+sum.OneTime-sum.Total) > 1e-6 {
		t.Errorf("yearly %v + one-time %v != total %v", sum.Yearly, sum.OneTime, sum.Total)
	}
	if report.Parameters == nil || report.Parameters.Cages != 30 {
		t.Errorf("parameters = %+v, want 30 cages", report.Parameters)
	}
}

func TestGetCategory(t *testing.T) {
	h := newTestServer(t, nil)

	w := get(t, h, "/api/cost/fixed-bins")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var e cost.Entry
	if err := json.NewDecoder(w.Body).Decode(&e); err != nil {
		t.Fatal(err)
	}
	if e.Kind != cost.OneTime || e.Value != 2400 {
		t.Errorf("fixed-bins = %+v, want one-time 2400", e)
	}

	w = get(t, h, "/api/cost/caviar")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetValidation(t *testing.T) {
	w := get(t, newTestServer(t, nil), "/api/validation")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var r validation.Report
	if err := json.NewDecoder(w.Body).Decode(&r); err != nil {
		t.Fatal(err)
	}
	if !r.Valid {
		t.Errorf("default model reported invalid: %+v", r.Errors)
	}
}

func TestGetSpec(t *testing.T) {
	w := get(t, newTestServer(t, nil), "/api/spec")
	var s spec.ShelterSpec
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatal(err)
	}
	if s.Raccoons.Count != 30 {
		t.Errorf("raccoons.count = %d, want 30", s.Raccoons.Count)
	}
}

func TestInvalidModelRefusesCost(t *testing.T) {
	h := newTestServer(t, func(s *spec.ShelterSpec) {
		s.Food.UnitEnergyKcal = 0
	})

	w := get(t, h, "/api/cost")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var r validation.Report
	if err := json.NewDecoder(w.Body).Decode(&r); err != nil {
		t.Fatal(err)
	}
	if r.Valid || len(r.Errors) == 0 {
		t.Errorf("expected validation errors, got %+v", r)
	}
}
