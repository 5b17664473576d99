package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Level indicates which part of the model produced the result.
type Level string

const (
	LevelEntry   Level = "entry"
	LevelSummary Level = "summary"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single finding against one path of the model,
// e.g. "entries.food" or "summary.one_time".
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Path        string   `json:"path"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report collects findings by severity. Any error makes it invalid.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// ErrInvalidModel is wrapped by Report.Err.
var ErrInvalidModel = errors.New("invalid cost model")

func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

func (r *Report) add(result Result, sev Severity) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.updateSummary()
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) { r.add(result, SeverityError) }

func (r *Report) AddWarning(result Result) { r.add(result, SeverityWarning) }

func (r *Report) AddInfo(result Result) { r.add(result, SeverityInfo) }

// Merge appends another report's findings to this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Valid = r.Valid && other.Valid
	r.updateSummary()
}

// Err returns nil for a valid report, otherwise an error wrapping
// ErrInvalidModel that names every failing path.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Path, e.Message))
	}
	return fmt.Errorf("%w: %s", ErrInvalidModel, strings.Join(msgs, "; "))
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
