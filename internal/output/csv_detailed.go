package output

import (
	"bytes"
	"encoding/csv"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// CSVScheduleExporter writes the schedule (monthly or yearly breakdown,
// amortization, instalments or tax slabs) of every outcome that has one.
// Each outcome gets its own header row since the columns differ per
// calculator. A report without any schedule yields only the shared
// leading columns.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "schedule-csv" }

func (c CSVScheduleExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	wrote := false
	for _, o := range report.Outcomes {
		header, rows := Schedule(o.Result)
		if len(rows) == 0 {
			continue
		}
		wrote = true
		if err := w.Write(append([]string{"Calculation", "Type"}, header...)); err != nil {
			return nil, err
		}
		for _, row := range rows {
			if err := w.Write(append([]string{o.Name, string(o.Kind)}, row...)); err != nil {
				return nil, err
			}
		}
	}
	if !wrote {
		if err := w.Write([]string{"Calculation", "Type"}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
