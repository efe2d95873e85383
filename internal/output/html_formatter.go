package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"label": Label,
	"add":   func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

type htmlSection struct {
	Name   string
	Kind   domain.Kind
	Error  string
	Fields []Field
	Header []string
	Rows   [][]string
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	sections := make([]htmlSection, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		header, rows := Schedule(o.Result)
		sections = append(sections, htmlSection{
			Name:   o.Name,
			Kind:   o.Kind,
			Error:  o.Error,
			Fields: SummaryFields(o.Result),
			Header: header,
			Rows:   rows,
		})
	}
	data := struct {
		GeneratedAt time.Time
		Sections    []htmlSection
		Assumptions []string
	}{report.GeneratedAt, sections, reportAssumptions(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
