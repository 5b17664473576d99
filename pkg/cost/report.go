package cost

import "github.com/ChicagoDave/raccoonshelter/pkg/analytics"

// Summary holds the aggregates printed under the totals line.
type Summary struct {
	Total      float64 `json:"total"`
	Yearly     float64 `json:"yearly"`
	OneTime    float64 `json:"one_time"`
	LandAreaM2 float64 `json:"land_area_m2"`
}

// Report is the complete cost output.
type Report struct {
	Entries    []Entry                       `json:"entries"`
	Summary    Summary                       `json:"summary"`
	Parameters *analytics.ResolvedParameters `json:"parameters,omitempty"`
}

func (m *Model) Summary() Summary {
	return Summary{
		Total:      m.Total(),
		Yearly:     m.Yearly(),
		OneTime:    m.OneTimeSubtotal(),
		LandAreaM2: m.landAreaM2,
	}
}

// Report returns the sorted entries with their summary.
func (m *Model) Report() *Report {
	return &Report{
		Entries:    m.Sorted(),
		Summary:    m.Summary(),
		Parameters: m.Parameters(),
	}
}
