package output

import (
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// Analysis counts the outcomes of a report.
type Analysis struct {
	Total     int
	Succeeded int
	Failed    []string // Names of calculations carrying an error
	ByKind    map[domain.Kind]int
}

// AnalyzeReport tallies successes and failures per calculator kind.
// Extracted from the console formatter for testability.
func AnalyzeReport(report *domain.Report) Analysis {
	a := Analysis{ByKind: make(map[domain.Kind]int)}
	for _, o := range report.Outcomes {
		a.Total++
		a.ByKind[o.Kind]++
		if o.Error != "" {
			a.Failed = append(a.Failed, o.Name)
			continue
		}
		a.Succeeded++
	}
	return a
}
