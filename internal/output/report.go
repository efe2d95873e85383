package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// lookup resolves a format name or returns an error listing the choices
func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// WriteReport formats report and writes it to w
func WriteReport(w io.Writer, report *domain.Report, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes report to a timestamped file in the working
// directory and returns its name.
func GenerateReport(report *domain.Report, format string) (string, error) {
	f, err := lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, Extension(f.Name()))
}

// SaveRequest writes a request as YAML, e.g. the example request
func SaveRequest(req *domain.Request, filename string) error {
	b, err := yaml.Marshal(req)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
