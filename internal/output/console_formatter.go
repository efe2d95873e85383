package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// ConsoleFormatter provides a readable console summary of every outcome.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WEALTHCALC REPORT")
	fmt.Fprintln(&buf, "================================")
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(&buf)

	for i, o := range report.Outcomes {
		title := fmt.Sprintf("%d. %s (%s)", i+1, o.Name, o.Kind)
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("-", len([]rune(title))))
		if o.Error != "" {
			fmt.Fprintf(&buf, "  Error: %s\n", o.Error)
		}
		fields := SummaryFields(o.Result)
		width := 0
		for _, f := range fields {
			if l := len(Label(f.Key)); l > width {
				width = l
			}
		}
		for _, f := range fields {
			fmt.Fprintf(&buf, "  %-*s %s\n", width+1, Label(f.Key)+":", f.Display())
		}
		if _, rows := Schedule(o.Result); len(rows) > 0 {
			fmt.Fprintf(&buf, "  (%d schedule rows; use --format schedule-csv for detail)\n", len(rows))
		}
		fmt.Fprintln(&buf)
	}

	a := AnalyzeReport(report)
	fmt.Fprintf(&buf, "Calculations: %d, succeeded: %d, failed: %d\n", a.Total, a.Succeeded, len(a.Failed))
	if len(a.Failed) > 0 {
		fmt.Fprintf(&buf, "Failed: %s\n", strings.Join(a.Failed, ", "))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, line := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", line)
	}
	return buf.Bytes(), nil
}
