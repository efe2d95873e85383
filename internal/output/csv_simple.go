package output

import (
	"bytes"
	"encoding/csv"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// CSVSummarizer implements the summary CSV output: one row per scalar
// result field, in long form so calculators with different fields share
// one header.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Calculation", "Type", "Field", "Value"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range report.Outcomes {
		if o.Error != "" {
			if err := w.Write([]string{o.Name, string(o.Kind), "error", o.Error}); err != nil {
				return nil, err
			}
		}
		for _, f := range SummaryFields(o.Result) {
			if err := w.Write([]string{o.Name, string(o.Kind), f.Key, f.Raw()}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
