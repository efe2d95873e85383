package output

import (
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// DefaultAssumptions lists the statutory rates rendered when a report
// carries none of its own.
var DefaultAssumptions = domain.DefaultRates().GenerateAssumptions()

// reportAssumptions returns the report's assumptions, or the defaults
func reportAssumptions(report *domain.Report) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
