package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/config"
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/output"
)

func TestWriteReport(t *testing.T) {
	report := &domain.Report{Outcomes: []domain.Outcome{{Name: "gst", Kind: domain.KindGST, Result: domain.GSTResult{}}}}
	for _, format := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		if err := output.WriteReport(&buf, report, format); err != nil {
			t.Fatalf("WriteReport %s error: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("WriteReport %s wrote nothing", format)
		}
	}
}

func TestSaveRequest(t *testing.T) {
	parser := config.NewInputParser()
	path := filepath.Join(t.TempDir(), "request.yaml")
	if err := output.SaveRequest(parser.CreateExampleRequest(), path); err != nil {
		t.Fatalf("SaveRequest error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "type: sip") {
		t.Fatalf("saved request missing sip calculation:\n%s", data)
	}
	if _, err := parser.LoadFromFile(path); err != nil {
		t.Fatalf("saved request does not load: %v", err)
	}
}
