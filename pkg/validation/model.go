package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/raccoonshelter/pkg/cost"
)

// ValidateModel checks a built cost model before it is reported: every value
// must be a finite, non-negative amount. A NaN or Inf here means a formula
// hit a floating-point domain fault.
func ValidateModel(m *cost.Model) *Report {
	r := NewReport()

	validateEntries(m, r)
	validateLandArea(m, r)

	if r.Valid {
		r.Merge(validateTotals(m))
	}
	return r
}

func validateEntries(m *cost.Model, r *Report) {
	entries := m.Sorted()
	if len(entries) == 0 {
		r.AddError(Result{
			Level:    LevelEntry,
			Message:  "model has no cost categories",
			Path:     "entries",
			Expected: "at least one category",
		})
		return
	}

	for _, e := range entries {
		path := fmt.Sprintf("entries.%s", e.Name)
		switch {
		case math.IsNaN(e.Value) || math.IsInf(e.Value, 0):
			r.AddError(Result{
				Level:       LevelEntry,
				Message:     fmt.Sprintf("%s is not a finite amount", e.Name),
				Path:        path,
				ActualValue: fmt.Sprint(e.Value),
				Expected:    "finite",
				Suggestions: []string{"Check the constants feeding this category for zero divisors or negative bases"},
			})
		case e.Value < 0:
			r.AddError(Result{
				Level:       LevelEntry,
				Message:     fmt.Sprintf("%s must be non-negative", e.Name),
				Path:        path,
				ActualValue: e.Value,
				Expected:    ">= 0",
			})
		}

		if e.Kind != cost.Recurring && e.Kind != cost.OneTime {
			r.AddError(Result{
				Level:       LevelEntry,
				Message:     fmt.Sprintf("%s has unknown kind %q", e.Name, e.Kind),
				Path:        path + ".kind",
				ActualValue: string(e.Kind),
				Expected:    fmt.Sprintf("%q or %q", cost.Recurring, cost.OneTime),
			})
		}
	}
}

func validateLandArea(m *cost.Model, r *Report) {
	a := m.LandAreaM2()
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		r.AddError(Result{
			Level:       LevelEntry,
			Message:     "land area must be a finite, non-negative area",
			Path:        "land_area_m2",
			ActualValue: fmt.Sprint(a),
			Expected:    ">= 0",
		})
	}
}

// validateTotals reports the aggregates and flags models with nothing in
// one of the two buckets.
func validateTotals(m *cost.Model) *Report {
	r := NewReport()
	s := m.Summary()

	if s.OneTime == 0 {
		r.AddWarning(Result{
			Level:    LevelSummary,
			Message:  "no one-time costs; the shelter has nothing to build",
			Path:     "summary.one_time",
			Expected: "> 0",
		})
	}
	if s.Yearly == 0 {
		r.AddWarning(Result{
			Level:    LevelSummary,
			Message:  "no recurring costs",
			Path:     "summary.yearly",
			Expected: "> 0",
		})
	}

	r.AddInfo(Result{
		Level:   LevelSummary,
		Message: fmt.Sprintf("%d categories, total %.2f (%.2f yearly, %.2f one-time)", m.Len(), s.Total, s.Yearly, s.OneTime),
		Path:    "summary",
	})
	return r
}
