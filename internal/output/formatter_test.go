package output

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"WEALTHCALC REPORT",
		"Generated: 2025-04-01 09:30",
		"1. sip (sip)",
		"Maturity Amount:",
		"₹12,809.33",
		"EMI:",
		"₹7,929.04",
		"Car Price:",
		"Error: Selling price must exceed variable cost",
		"(1 schedule rows",
		"Calculations: 3, succeeded: 2, failed: 1",
		"• PPF interest: 7.1% p.a.",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("console output missing %q:\n%s", want, content)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Outcomes []struct {
			Name   string         `json:"name"`
			Kind   string         `json:"type"`
			Result map[string]any `json:"result"`
			Error  string         `json:"error"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(decoded.Outcomes))
	}
	if decoded.Outcomes[0].Result["maturity_amount"] != "12809.33" {
		t.Fatalf("maturity_amount = %v", decoded.Outcomes[0].Result["maturity_amount"])
	}
	// embedded loan fields are promoted to the top level
	if decoded.Outcomes[1].Result["emi"] != "7929.04" {
		t.Fatalf("emi = %v", decoded.Outcomes[1].Result["emi"])
	}
	if decoded.Outcomes[2].Error == "" {
		t.Fatalf("expected error on third outcome")
	}
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if lines[0] != "Calculation,Type,Field,Value" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "sip,sip,total_investment,12000" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(string(out), "car,car_loan,emi,7929.04") {
		t.Fatalf("missing promoted loan field:\n%s", out)
	}
	if !strings.Contains(string(out), "bad,break_even,error,Selling price must exceed variable cost") {
		t.Fatalf("missing error row:\n%s", out)
	}
}

func TestCSVScheduleExporter(t *testing.T) {
	out, err := CSVScheduleExporter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Calculation,Type,year,contribution,interest,balance,total_contributed" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "sip,sip,1,12000,809.33,12809.33,12000" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestCSVScheduleExporterWithoutSchedules(t *testing.T) {
	report := &domain.Report{Outcomes: []domain.Outcome{{Name: "gst", Kind: domain.KindGST, Result: domain.GSTResult{}}}}
	out, err := CSVScheduleExporter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "Calculation,Type" {
		t.Fatalf("expected only the leading header, got %q", got)
	}
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"Calculation Summary", "Key Assumptions", "Maturity Amount", "₹12,809.33", "Schedule (1 rows)"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in HTML output", want)
		}
	}
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"Console":      "console",
		"pretty":       "console",
		"csv-summary":  "csv",
		"detailed-csv": "schedule-csv",
		"schedule":     "schedule-csv",
		"json-pretty":  "json",
		" html ":       "html",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q did not resolve to a formatter", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Fatalf("pdf should not resolve")
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	got := strings.Join(AvailableFormatterNames(), ",")
	if got != "console,csv,html,json,schedule-csv" {
		t.Fatalf("AvailableFormatterNames = %s", got)
	}
	if len(AvailableFormatAliases()) != len(aliasMap) {
		t.Fatalf("aliases incomplete")
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{"console": "txt", "schedule": "csv", "csv": "csv", "json": "json", "html": "html"}
	for name, want := range cases {
		if got := Extension(name); got != want {
			t.Fatalf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	err := WriteReport(&strings.Builder{}, buildTestReport(), "definitely-not-a-format")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestWriteFormatted(t *testing.T) {
	wd, _ := os.Getwd()
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	name, err := WriteFormatted(JSONFormatter{}, buildTestReport(), "json")
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	if name != "wealthcalc_report_20250401_093000.json" {
		t.Fatalf("unexpected filename %q", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("report file not written: %v", err)
	}
}
